package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"sportevents/internal/domain"
)

type dashboardUseCase struct {
	events domain.EventService
	toasts domain.ToastMailbox
	logger *slog.Logger
}

// NewDashboardUseCase wraps the event service with toasts and navigation.
func NewDashboardUseCase(events domain.EventService, toasts domain.ToastMailbox, logger *slog.Logger) domain.DashboardUseCase {
	return &dashboardUseCase{events: events, toasts: toasts, logger: logger}
}

func (uc *dashboardUseCase) Dashboard(ctx context.Context, caller *domain.Identity, search, sport string) domain.Result[*domain.DashboardView] {
	if caller == nil {
		return domain.Failure[*domain.DashboardView](domain.ErrUnauthenticated)
	}
	events, err := uc.events.ListEvents(ctx, caller, search, sport)
	if err != nil {
		return domain.Failure[*domain.DashboardView](err)
	}
	toast, err := uc.toasts.Take(ctx, caller.UserID)
	if err != nil {
		uc.logger.WarnContext(ctx, "toast read failed", "user_id", caller.UserID, "error", err)
	}
	return domain.Success(&domain.DashboardView{Events: events, Toast: toast})
}

func (uc *dashboardUseCase) CreateEvent(ctx context.Context, caller *domain.Identity, input domain.EventInput) domain.Result[*domain.EventMutation] {
	if caller == nil {
		return domain.Failure[*domain.EventMutation](domain.ErrUnauthenticated)
	}
	draft, err := input.Parse()
	if err != nil {
		return domain.Failure[*domain.EventMutation](err)
	}
	mutation, err := uc.events.CreateEvent(ctx, caller, draft)
	if err != nil {
		return domain.Failure[*domain.EventMutation](err)
	}
	uc.notify(ctx, caller, domain.ToastSuccess, mutationMessage("created", mutation))
	return domain.NavigateTo(domain.DashboardLocation, mutation)
}

func (uc *dashboardUseCase) UpdateEvent(ctx context.Context, caller *domain.Identity, eventID string, input domain.EventInput) domain.Result[*domain.EventMutation] {
	if caller == nil {
		return domain.Failure[*domain.EventMutation](domain.ErrUnauthenticated)
	}
	draft, err := input.Parse()
	if err != nil {
		return domain.Failure[*domain.EventMutation](err)
	}
	mutation, err := uc.events.UpdateEvent(ctx, caller, eventID, draft)
	if err != nil {
		return domain.Failure[*domain.EventMutation](err)
	}
	uc.notify(ctx, caller, domain.ToastSuccess, mutationMessage("updated", mutation))
	return domain.NavigateTo(domain.DashboardLocation, mutation)
}

func (uc *dashboardUseCase) DeleteEvent(ctx context.Context, caller *domain.Identity, eventID string) domain.Result[struct{}] {
	if caller == nil {
		return domain.Failure[struct{}](domain.ErrUnauthenticated)
	}
	if err := uc.events.DeleteEvent(ctx, caller, eventID); err != nil {
		uc.notify(ctx, caller, domain.ToastError, "Failed to delete event: "+domain.PublicMessage(err))
		return domain.Failure[struct{}](err)
	}
	uc.notify(ctx, caller, domain.ToastSuccess, "Event deleted successfully")
	return domain.NavigateTo(domain.DashboardLocation, struct{}{})
}

func (uc *dashboardUseCase) ClearToast(ctx context.Context, caller *domain.Identity) domain.Result[struct{}] {
	if caller == nil {
		return domain.Failure[struct{}](domain.ErrUnauthenticated)
	}
	if err := uc.toasts.Clear(ctx, caller.UserID); err != nil {
		return domain.Failure[struct{}](fmt.Errorf("clear toast: %w", err))
	}
	return domain.Success(struct{}{})
}

// notify stores a toast for the caller's next render. A mailbox failure never fails the action.
func (uc *dashboardUseCase) notify(ctx context.Context, caller *domain.Identity, t domain.ToastType, message string) {
	if err := uc.toasts.Put(ctx, caller.UserID, domain.NewToast(t, message)); err != nil {
		uc.logger.WarnContext(ctx, "toast write failed", "user_id", caller.UserID, "error", err)
	}
}

func mutationMessage(verb string, m *domain.EventMutation) string {
	failed := len(m.FailedVenues())
	if failed == 0 {
		return "Event " + verb + " successfully"
	}
	return fmt.Sprintf("Event %s, but %d of %d venues could not be saved", verb, failed, len(m.Venues))
}
