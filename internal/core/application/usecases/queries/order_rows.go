package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// fetchOrderRows reads the order rows matching the status predicate, newest
// checkout first, then attaches each order's line items in display order.
// Both board queries share this path so the two buckets can never drift in
// shape.
func fetchOrderRows(ctx context.Context, db *gorm.DB, statusPredicate string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	index := make(map[string]int)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_name,
			o.client_contact,
			o.client_city,
			o.client_address,
			o.payment_method,
			o.status,
			o.total_price,
			o.created_at
		FROM orders o
		WHERE `+statusPredicate+`
		ORDER BY o.created_at DESC, o.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp          OrderResponse
			id            string
			paymentMethod int
			status        int
			createdAt     time.Time
		)

		err = rows.Scan(
			&id,
			&resp.ClientName,
			&resp.ClientContact,
			&resp.ClientCity,
			&resp.ClientAddress,
			&paymentMethod,
			&status,
			&resp.TotalPrice,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.ObjectIDFromHex(id)
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.PaymentMethod = order.PaymentMethod(paymentMethod)
		resp.Status = order.Status(status)
		resp.CreatedAt = createdAt
		resp.Products = make([]OrderItemResponse, 0)

		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = attachItems(ctx, db, statusPredicate, args, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the line items for every selected order in one query and
// files them onto their rows by position.
func attachItems(
	ctx context.Context,
	db *gorm.DB,
	statusPredicate string,
	args []any,
	orders []OrderResponse,
	index map[string]int,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.name,
			i.price,
			i.quantity,
			i.product_id
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE `+statusPredicate+`
		ORDER BY i.order_id, i.position
	`, args...).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			item    OrderItemResponse
		)

		err = rows.Scan(
			&orderID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.ProductID,
		)
		if err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Products = append(orders[i].Products, item)
		}
	}

	return rows.Err()
}
