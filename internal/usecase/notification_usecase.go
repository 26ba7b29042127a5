package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// INotificationUseCase derives the notification feed. Nothing is stored; the
// feed is recomputed on every call.
type INotificationUseCase interface {
	List(ctx context.Context, now time.Time) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	orderRepo interfaces.IServiceOrderRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(orderRepo interfaces.IServiceOrderRepository) *NotificationUseCase {
	return &NotificationUseCase{orderRepo: orderRepo}
}

// List returns one "atraso" notification per in-progress order whose expected
// delivery is before now, most overdue first.
func (u *NotificationUseCase) List(ctx context.Context, now time.Time) ([]entities.Notification, error) {
	orders, err := u.orderRepo.List(ctx, interfaces.OrderFilter{
		Statuses: []entities.OrderStatus{entities.OrderStatusEmAndamento},
	})
	if err != nil {
		log.Printf("[notification][usecase] list orders failed err=%v", err)
		return nil, err
	}

	overdue := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if o.IsOverdue(now) {
			overdue = append(overdue, o)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].ExpectedDelivery.Before(*overdue[j].ExpectedDelivery)
	})

	out := make([]entities.Notification, 0, len(overdue))
	for _, o := range overdue {
		days := int(now.Sub(*o.ExpectedDelivery).Hours() / 24)
		out = append(out, entities.Notification{
			ID:          entities.NotificationTypeOverdue + "-" + o.ID,
			Type:        entities.NotificationTypeOverdue,
			Title:       fmt.Sprintf("OS #%s em atraso", o.OrderNumber),
			Message:     overdueMessage(o, days),
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			CreatedAt:   now,
		})
	}
	return out, nil
}

func overdueMessage(o entities.ServiceOrder, days int) string {
	due := o.ExpectedDelivery.Format("02/01/2006")
	if days < 1 {
		return fmt.Sprintf("A entrega prevista para %s venceu hoje.", due)
	}
	return fmt.Sprintf("A entrega prevista para %s está atrasada há %d dia(s).", due, days)
}
