package admin

import (
	"cryptofx/internal/model"

	"github.com/shopspring/decimal"
)

// userRow is the back-office listing shape, wider than model.User: the
// panel also shows account status and last-login.
type userRow struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Status    string          `json:"status"`
	Balance   decimal.Decimal `json:"balance"`
	Verified  bool            `json:"verified"`
	JoinDate  string          `json:"join_date"`
	LastLogin string          `json:"last_login"`
}

func seedStats() model.AdminStats {
	return model.AdminStats{
		TotalUsers:         12547,
		TotalVolume:        decimal.RequireFromString("15847563210"),
		PendingWithdrawals: 47,
		PendingDeposits:    23,
	}
}

func seedUserRows() []userRow {
	return []userRow{
		{
			ID:        "1",
			Name:      "John Doe",
			Email:     "john@example.com",
			Status:    "active",
			Balance:   decimal.RequireFromString("125847.50"),
			Verified:  true,
			JoinDate:  "2024-01-15",
			LastLogin: "2024-04-08 10:30",
		},
		{
			ID:        "2",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Status:    "pending",
			Balance:   decimal.RequireFromString("45230.75"),
			Verified:  false,
			JoinDate:  "2024-04-05",
			LastLogin: "2024-04-08 09:15",
		},
		{
			ID:        "3",
			Name:      "Mike Johnson",
			Email:     "mike@example.com",
			Status:    "suspended",
			Balance:   decimal.Zero,
			Verified:  true,
			JoinDate:  "2024-03-20",
			LastLogin: "2024-04-07 16:45",
		},
	}
}
