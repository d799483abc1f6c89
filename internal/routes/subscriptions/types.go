package subscriptions

import (
	"time"

	"calvillo.me/recetas/internal/data"
)

type SubscriptionInput struct {
	Endpoint *string `json:"endpoint"`
	Protocol *string `json:"protocol"`
}

type Subscription struct {
	Id         string    `json:"subscriberId"`
	Endpoint   string    `json:"endpoint"`
	Protocol   string    `json:"protocol"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

func NewSubscription(dto data.SubscriptionDTO) Subscription {
	return Subscription{
		Id:         dto.SK,
		Endpoint:   dto.Endpoint,
		Protocol:   dto.Protocol,
		CreateTime: dto.CreateTime,
		UpdateTime: dto.UpdateTime,
	}
}
