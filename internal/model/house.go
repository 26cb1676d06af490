package model

// HouseState Живая статистика казино по реальным спинам
type HouseState struct {
	TotalSpins  int
	TotalBet    float64
	TotalPayout float64

	CurrentRTP       float64 // TotalPayout/TotalBet*100
	HouseProfit      float64
	HouseEdgePercent float64

	WindowRTP  float64 // RTP в окне последних спинов
	WindowSize int
}

// Dashboard Все, что видит администратор на главной странице
type Dashboard struct {
	Settings        RouletteSettings
	House           HouseState
	Players         []User
	PendingRequests []MoneyRequest
}
