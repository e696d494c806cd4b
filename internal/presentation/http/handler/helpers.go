package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// requireUserID extracts the user ID or writes a 401 and returns false
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return uuid.Nil, false
	}
	return *userID, true
}

// kindFromParam parses the :kind path parameter ("purchase" or "sale")
// or writes a 400 and returns false.
func kindFromParam(c *gin.Context) (enum.RecordKind, bool) {
	kind, ok := enum.ParseRecordKind(c.Param("kind"))
	if !ok {
		response.BadRequest(c, "Record kind must be purchase or sale")
		return "", false
	}
	return kind, true
}

// uuidFromParam parses a UUID path parameter or writes a 400 and
// returns false.
func uuidFromParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
