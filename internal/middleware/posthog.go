package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/personal_finance_api/internal/utils"
	"github.com/gin-gonic/gin"
)

var methodActions = map[string]string{
	http.MethodGet:    "viewed",
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// PosthogMiddleware reports every successful authenticated request under /api
// as "<resource> <action>", e.g. "budgets created" or "transactions viewed".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if posthogClient == nil || !posthogClient.IsInitialized() {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		resource, action := routeEvent(c.FullPath(), c.Request.Method)
		if resource == "" {
			return
		}

		props := map[string]any{
			"resource":    resource,
			"action":      action,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		if id := c.Param("id"); id != "" {
			props["resource_id"] = id
		}
		posthogClient.Enqueue(strconv.FormatInt(userID, 10), resource+" "+action, props)
	}
}

// routeEvent derives the tracked resource and action from a route template.
// Sub-actions such as "/goals/:id/contributions" or "/notifications/read-all"
// are reported under the trailing segment.
func routeEvent(fullPath, method string) (resource, action string) {
	segments := strings.Split(strings.Trim(strings.TrimPrefix(fullPath, "/api"), "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", ""
	}
	resource = segments[0]
	action, ok := methodActions[method]
	if !ok {
		action = strings.ToLower(method)
	}
	if last := segments[len(segments)-1]; len(segments) > 1 && !strings.HasPrefix(last, ":") {
		action = last
	}
	return resource, action
}

// PosthogEvent sends a named event on behalf of the authenticated user.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any, 1)
	}
	properties["route"] = c.FullPath()
	posthogClient.Enqueue(strconv.FormatInt(userID, 10), eventName, properties)
}
