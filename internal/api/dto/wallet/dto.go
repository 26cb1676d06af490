package wallet

type RequestMoneyRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

type RequestMoneyResponse struct {
	RequestID int    `json:"request_id"`
	Message   string `json:"message"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
