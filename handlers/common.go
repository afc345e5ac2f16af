package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/httpserver"
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"goaltrack-service/services"
)

// logRequest logs the request with route/auth details from the request
// context. Shared by every handler in this package.
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	routeName := httpserver.GetRouteName(ctx)
	method := httpserver.GetRouteMethod(ctx)
	path := httpserver.GetRoutePath(ctx)
	auth := httpserver.GetRequestAuth(ctx)

	// Build full message (timestamp - route - method - path - client)
	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + routeName + " - " + method + " - " + path
	if auth != nil {
		logMsg += " - client:" + auth.Client
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", routeName),
		zap.String("method", method),
		zap.String("path", path),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

// currentUserID pulls the acting user's id from the session auth
// claims. Numbers arrive as int when the memory cache is in play and
// as float64 after a redis JSON round trip, so both are handled.
func currentUserID(ctx context.Context) (int, bool) {
	auth := httpserver.GetRequestAuth(ctx)
	if auth == nil {
		return 0, false
	}
	claims, ok := auth.Claims.(map[string]interface{})
	if !ok {
		return 0, false
	}
	switch v := claims["user_id"].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// pathID parses the {id} path variable.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError maps the service error taxonomy onto HTTP status
// codes and the errs response bodies. Internal failures get a generic
// body; the cause stays in the logs only.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch services.KindOf(err) {
	case services.KindValidation:
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError(err.Error()))
	case services.KindNotAuthorized:
		writeJSON(w, http.StatusForbidden, errs.NewValidationError(err.Error()))
	case services.KindNotFound:
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError(err.Error()))
	default:
		logRequest(ctx, "error", "Internal failure", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError(err.Error()))
	}
}

// requireUser resolves the session user or writes a 401.
func requireUser(ctx context.Context, w http.ResponseWriter) (int, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		logRequest(ctx, "error", "No session user")
		writeJSON(w, http.StatusUnauthorized, errs.NewValidationError("Not authenticated"))
		return 0, false
	}
	return userID, true
}
