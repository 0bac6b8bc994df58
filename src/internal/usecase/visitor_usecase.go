package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/presence"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/repository"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type VisitorUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	VisitorRepository *repository.VisitorRepository
	Presence          *presence.Subscriber
}

func NewVisitorUseCase(
	logger log.Log,
	validate *validator.Validate,
	visitorRepository *repository.VisitorRepository,
	presenceSubscriber *presence.Subscriber,
) *VisitorUseCase {
	return &VisitorUseCase{
		Log:               logger,
		Validate:          validate,
		VisitorRepository: visitorRepository,
		Presence:          presenceSubscriber,
	}
}

// Track records a page view. Tracking must never block or break the page,
// so every failure here is logged and swallowed and the result is always a
// success.
func (c *VisitorUseCase) Track(ctx context.Context, request *model.TrackVisitRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		c.Log.Error("Track-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	visitor := &entity.Visitor{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint(request.ClientIP, request.UserAgent),
		IPHash:      hashValue(request.ClientIP),
		UserAgent:   request.UserAgent,
		Path:        request.Path,
		Referrer:    request.Referrer,
		Country:     request.Country,
		SessionID:   request.SessionID,
	}

	if err := c.VisitorRepository.Insert(ctx, visitor); err != nil {
		c.Log.Error("Track-insert", err.Error(), "path", request.Path)
		return result
	}

	if request.SessionID != "" {
		if err := c.VisitorRepository.TouchSession(ctx, request.SessionID); err != nil {
			c.Log.Error("Track-touch", err.Error(), "sessionID", request.SessionID)
		}
	}

	return result
}

// ActiveCount reports the latest presence-feed value with a connectivity
// flag; a down subscription yields the last-known count and connected=false.
func (c *VisitorUseCase) ActiveCount(_ context.Context) utils.Result {
	var result utils.Result

	count, connected := 0, false
	if c.Presence != nil {
		count, connected = c.Presence.Snapshot()
	}

	result.Data = model.ActiveCountResponse{
		Count:     count,
		Connected: connected,
	}
	return result
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// fingerprint derives a stable visitor id from client signals. Not
// cryptographically unique, and not meant to be.
func fingerprint(ip, userAgent string) string {
	return hashValue(ip + "|" + userAgent)[:32]
}
