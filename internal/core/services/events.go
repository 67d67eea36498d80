package services

import "github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"

type EventPublisher interface {
	Publish(event domain.ChangeEvent)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.ChangeEvent) {}

type GoalReader interface {
	Current() int
}
