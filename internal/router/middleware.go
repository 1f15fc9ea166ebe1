package router

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/littlelemon-next/internal/authz"
	"github.com/littlelemon-next/internal/config"
	"github.com/littlelemon-next/internal/http/response"
	"github.com/littlelemon-next/internal/logger"
	"github.com/littlelemon-next/internal/repository"
	"github.com/littlelemon-next/internal/throttle"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"
const currentUserKey = "current_user"

const (
	msgAuthMissing      = "Authentication credentials were not provided."
	msgTokenInvalid     = "Invalid token."
	msgPermissionDenied = "You do not have permission to perform this action."
	msgThrottled        = "Request limit exceeded. Try again in %d seconds."
)

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

type authClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware 鉴权中间件：校验协作方签发的 HS256 令牌并加载当前用户
func AuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretKey == "" || userRepo == nil {
			response.Unauthorized(c, msgTokenInvalid)
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, msgAuthMissing)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Unauthorized(c, msgAuthMissing)
			c.Abort()
			return
		}

		parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		claims := &authClaims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			response.Unauthorized(c, msgTokenInvalid)
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil {
			response.Unauthorized(c, msgTokenInvalid)
			c.Abort()
			return
		}

		groups := user.GroupNames()
		current := &authz.CurrentUser{
			ID:          user.ID,
			Username:    user.Username,
			IsSuperuser: user.IsSuperuser,
			Groups:      groups,
			Role:        authz.DeriveRole(user.IsSuperuser, groups),
		}
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set(currentUserKey, current)
		c.Next()
	}
}

// GetCurrentUser 从上下文取出当前用户
func GetCurrentUser(c *gin.Context) *authz.CurrentUser {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*authz.CurrentUser)
	if !ok {
		return nil
	}
	return user
}

// EnforceMiddleware 授权中间件：按角色、路由模板与方法判定
func EnforceMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			response.Unauthorized(c, msgAuthMissing)
			c.Abort()
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}

		allowed, err := authzService.Enforce(user.Role, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("authz_enforce_failed",
				"user_id", user.ID,
				"role", string(user.Role),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			response.Forbidden(c, msgPermissionDenied)
			c.Abort()
			return
		}
		if !allowed {
			logger.Warnw("authz_permission_denied",
				"user_id", user.ID,
				"role", string(user.Role),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			response.Forbidden(c, msgPermissionDenied)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ThrottleMiddleware 分组限流中间件：匿名请求不限流，存储故障时放行
func ThrottleMiddleware(limiter *throttle.Limiter, cfg config.ThrottleConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || !cfg.Enabled {
			c.Next()
			return
		}
		user := GetCurrentUser(c)
		if user == nil {
			c.Next()
			return
		}

		group := user.Role.ThrottleGroup()
		rate := cfg.RateFor(group)
		key := throttle.Key(group, user.ID)
		decision, err := limiter.Allow(c.Request.Context(), key, rate)
		if err != nil {
			logger.Warnw("throttle_store_failed",
				"user_id", user.ID,
				"group", group,
				"error", err,
			)
		}
		if !decision.Allowed {
			// 剩余秒数向下取整
			seconds := int(decision.RetryAfter.Seconds())
			if seconds < 0 {
				seconds = 0
			}
			response.TooManyRequests(c, fmt.Sprintf(msgThrottled, seconds))
			c.Abort()
			return
		}

		c.Next()
	}
}
