package utils

import (
	"encoding/json"
	"golftrip-server/models"
	"golftrip-server/storage"
	"net"

	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

// Audit writes one audit log row. Failures are swallowed: an audit write must
// never fail the request that triggered it.
func Audit(ctx iris.Context, action, resourceType string, resourceID uint, before interface{}, after interface{}, legalBasis string) {
	var beforeStr, afterStr string
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			beforeStr = string(b)
		}
	}
	if after != nil {
		if a, err := json.Marshal(after); err == nil {
			afterStr = string(a)
		}
	}

	var actorID uint
	if tok := jsonWT.Get(ctx); tok != nil {
		if at, ok := tok.(*AccessToken); ok {
			actorID = at.ID
		}
	}

	retention := 2555 // 7 years default
	if days, ok := models.AuditRetentionDays[action]; ok {
		retention = days
	}

	log := models.AuditLog{
		ActorUserID:   actorID,
		Action:        action,
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		BeforeJSON:    beforeStr,
		AfterJSON:     afterStr,
		IPAddress:     ClientIP(ctx),
		UserAgent:     ctx.GetHeader("User-Agent"),
		LegalBasis:    legalBasis,
		RetentionDays: retention,
	}
	storage.DB.Create(&log)
}

func ClientIP(ctx iris.Context) string {
	if ip := ctx.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, _ := net.SplitHostPort(ctx.RemoteAddr())
	if ip == "" {
		return ctx.RemoteAddr()
	}
	return ip
}
