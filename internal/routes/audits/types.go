package audits

import (
	"time"

	"calvillo.me/recetas/internal/data"
)

type Audit struct {
	Id           string                  `json:"auditId"`
	ResourceId   string                  `json:"resourceId"`
	ResourceType string                  `json:"resourceType"`
	Action       string                  `json:"action"`
	NewValues    *map[string]interface{} `json:"newValues,omitempty"`
	OldValues    *map[string]interface{} `json:"oldValues,omitempty"`
	CreateTime   time.Time               `json:"createTime"`
}

func NewAudit(dto data.AuditDTO) Audit {
	return Audit{
		Id:           dto.SK,
		ResourceId:   dto.ResourceId,
		ResourceType: dto.ResourceType,
		Action:       dto.Action,
		NewValues:    dto.NewValues,
		OldValues:    dto.OldValues,
		CreateTime:   dto.CreateTime,
	}
}
