package order

// Client holds the customer details attached to an order.
//
// All fields are free text entered at checkout or during a back-office edit;
// the workflow imposes no validation on them, so Client is a plain value with
// exported fields rather than a guarded value object.
type Client struct {
	Name    string
	Contact string
	City    string
	Address string
}
