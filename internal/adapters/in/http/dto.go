package http

// OrderRequest is the body of POST /api/v1/orders. Either Line is set, as typed
// at the prompt ("Lunch 1,2,2"), or Course and Items are.
type OrderRequest struct {
	Line   string `json:"line,omitempty"`
	Course string `json:"course,omitempty"`
	Items  []int  `json:"items,omitempty"`
}

// OrderResponse describes an accepted order.
type OrderResponse struct {
	ID     string      `json:"id"`
	Course string      `json:"course"`
	Lines  []OrderLine `json:"lines"`
	Text   string      `json:"text"`
}

// OrderLine is one distinct item of an accepted order.
type OrderLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Course is one course of the menu.
type Course struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is one orderable item of a course.
type MenuItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
