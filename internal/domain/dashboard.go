package domain

import "context"

// DashboardLocation is where a completed mutation sends the user.
const DashboardLocation = "/dashboard"

// DashboardView is the data of one dashboard render: the filtered events and the pending toast, if any.
type DashboardView struct {
	Events []*Event `json:"events"`
	Toast  *Toast   `json:"toast"`
}

// DashboardUseCase runs the dashboard actions. Every action returns a Result instead of an error.
// Successful mutations navigate back to the dashboard and leave a toast for the next render.
type DashboardUseCase interface {
	Dashboard(ctx context.Context, caller *Identity, search, sport string) Result[*DashboardView]
	CreateEvent(ctx context.Context, caller *Identity, input EventInput) Result[*EventMutation]
	UpdateEvent(ctx context.Context, caller *Identity, eventID string, input EventInput) Result[*EventMutation]
	DeleteEvent(ctx context.Context, caller *Identity, eventID string) Result[struct{}]
	ClearToast(ctx context.Context, caller *Identity) Result[struct{}]
}
