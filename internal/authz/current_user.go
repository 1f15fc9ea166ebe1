package authz

// CurrentUser 当前请求用户（鉴权中间件解析后注入上下文）
type CurrentUser struct {
	ID          uint
	Username    string
	IsSuperuser bool
	Groups      []string
	Role        Role
}
