package dto

// ไม่มีการตรวจสอบค่า productName ว่างได้ และ quantity เป็น 0 หรือติดลบได้
// quantity เป็นเลข 32 บิต ค่าที่เกินช่วงจะ decode ไม่ผ่าน
type CreateOrderRequest struct {
	ProductName string `json:"productName"`
	Quantity    int32  `json:"quantity"`
}

type CreateOrderResponse struct {
	OrderID     int    `json:"orderId"`
	ProductName string `json:"productName"`
	Quantity    int32  `json:"quantity"`
	Status      string `json:"status"`
}

func NewCreateOrderResponse(id int, req *CreateOrderRequest, status string) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID:     id,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Status:      status,
	}
}
