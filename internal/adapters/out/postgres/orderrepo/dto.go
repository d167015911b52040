// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// efficient querying by review status.
type OrderDTO struct {
	ID            string `gorm:"type:char(24);primaryKey"`
	ClientName    string
	ClientContact string
	ClientCity    string
	ClientAddress string
	PaymentMethod int
	Status        int `gorm:"index"`
	TotalPrice    float64
	CreatedAt     time.Time
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row. Position preserves the display
// order of the collection; the pair (order_id, position) identifies a row.
type OrderItemDTO struct {
	OrderID   string `gorm:"type:char(24);primaryKey"`
	Position  int    `gorm:"primaryKey;autoIncrement:false"`
	Name      string
	Price     float64
	Quantity  int
	ProductID string `gorm:"type:char(24)"`
}

// TableName specifies the database table name for line item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line items keep their slice index as the persisted position.
func fromDomain(aggregate *order.Order) OrderDTO {
	products := aggregate.Products()
	items := make([]OrderItemDTO, 0, len(products))
	for i, item := range products {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Hex(),
			Position:  i,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
		})
	}

	client := aggregate.Client()
	return OrderDTO{
		ID:            aggregate.ID().Hex(),
		ClientName:    client.Name,
		ClientContact: client.Contact,
		ClientCity:    client.City,
		ClientAddress: client.Address,
		PaymentMethod: int(aggregate.PaymentMethod()),
		Status:        int(aggregate.Status()),
		TotalPrice:    aggregate.TotalPrice(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
// Items are expected preloaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.ObjectIDFromHex(dto.ID)
	if err != nil {
		return nil, err
	}

	products := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		products = append(products, order.LineItem{
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
		})
	}

	return order.RestoreOrder(
		id,
		order.Client{
			Name:    dto.ClientName,
			Contact: dto.ClientContact,
			City:    dto.ClientCity,
			Address: dto.ClientAddress,
		},
		order.PaymentMethod(dto.PaymentMethod),
		products,
		order.Status(dto.Status),
		dto.TotalPrice,
		dto.CreatedAt,
	)
}
