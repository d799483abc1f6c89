package filters

import (
	"context"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

type FilterContext struct {
	Request  *events.APIGatewayV2HTTPRequest
	Response *events.APIGatewayV2HTTPResponse
	Context  *context.Context
}

type RequestFilter interface {
	Filter(ctx *FilterContext) (*FilterContext, bool)
}

type CorsFilter struct {
	Methods []string
	Origins []string
	Headers []string
}

func (cf *CorsFilter) Filter(ctx *FilterContext) (*FilterContext, bool) {
	if ctx.Request.RequestContext.HTTP.Method == "OPTIONS" {
		headers := ctx.Response.Headers
		if headers == nil {
			headers = make(map[string]string, 4)
		}
		headers["content-length"] = "0"
		headers["access-control-allow-headers"] = strings.Join(cf.Headers, ", ")
		headers["access-control-allow-methods"] = strings.Join(cf.Methods, ", ")
		headers["access-control-allow-origin"] = strings.Join(cf.Origins, ", ")
		return &FilterContext{
			Request: ctx.Request,
			Context: ctx.Context,
			Response: &events.APIGatewayV2HTTPResponse{
				Headers:    headers,
				StatusCode: ctx.Response.StatusCode,
			},
		}, true
	}
	return ctx, false
}

// Identity extracts the caller's username from either a JWT authorizer or
// a lambda authorizer that stashed claims under "jwt".
func Identity(request *events.APIGatewayV2HTTPRequest) (string, bool) {
	authorizer := request.RequestContext.Authorizer
	if authorizer == nil {
		return "", false
	}
	if authorizer.JWT != nil {
		if username, ok := authorizer.JWT.Claims["username"]; ok {
			return username, true
		}
	}
	if claims, ok := authorizer.Lambda["jwt"].(map[string]interface{}); ok {
		if username, ok := claims["username"].(string); ok {
			return username, true
		}
	}
	return "", false
}

type AuthorizedIdentityFilter struct {
}

func (af *AuthorizedIdentityFilter) Filter(ctx *FilterContext) (*FilterContext, bool) {
	if ctx.Request.RequestContext.HTTP.Method == "OPTIONS" {
		return ctx, false
	}
	if _, ok := Identity(ctx.Request); ok {
		return ctx, false
	}
	body := "{\"message\": \"Unauthorized\"}"
	return &FilterContext{
		Request: ctx.Request,
		Context: ctx.Context,
		Response: &events.APIGatewayV2HTTPResponse{
			Headers: map[string]string{
				"Content-Type":   "application/json",
				"Content-Length": strconv.Itoa(len(body)),
			},
			StatusCode: 401,
			Body:       body,
		},
	}, true
}

func DefaultFilterContext(event events.APIGatewayV2HTTPRequest, ctx context.Context) *FilterContext {
	return &FilterContext{
		Request: &event,
		Response: &events.APIGatewayV2HTTPResponse{
			StatusCode: 200,
		},
		Context: &ctx,
	}
}

func DefaultCorsFilter() *CorsFilter {
	return &CorsFilter{
		Methods: []string{"GET", "PUT", "POST", "DELETE"},
		Headers: []string{"Content-Type", "Content-Length", "Authorization"},
		Origins: []string{"*"},
	}
}

func DefaultAuthorizationFilter() *AuthorizedIdentityFilter {
	return &AuthorizedIdentityFilter{}
}
