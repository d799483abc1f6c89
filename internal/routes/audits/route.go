package audits

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/routes"
	"calvillo.me/recetas/internal/routes/util"
)

type AuditService struct {
	data data.AuditRepository
}

func NewRoute(data data.AuditRepository) routes.Service {
	return &AuditService{
		data: data,
	}
}

func (as *AuditService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"GET:/audits":          util.AuthorizedRoute(as.ListAudits),
		"GET:/audits/:auditId": util.AuthorizedRoute(as.GetAudit),
	}
}

func (as *AuditService) ListAudits(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	return util.SerializeList(as.data, NewAudit, event, ctx)
}

func (as *AuditService) GetAudit(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	item, err := as.data.Get(util.Username(ctx), util.RequestParam(ctx, "auditId"))
	return util.SerializeResponseOK(NewAudit, item, err)
}
