package constants

// 用户组常量（与鉴权协作方的组名保持一致）
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "DeliveryCrew"
)

// 组展示名常量（用于接口提示消息）
const (
	GroupDisplayManager      = "Manager"
	GroupDisplayDeliveryCrew = "Delivery Crew"
)

// 订单状态常量
const (
	OrderStatusPlaced         = "placed"
	OrderStatusOutForDelivery = "out_for_delivery"
)

// 限流分组常量
const (
	ThrottleGroupSuperuser    = "super_user"
	ThrottleGroupManager      = "manager"
	ThrottleGroupDeliveryCrew = "delivery_crew"
	ThrottleGroupDefault      = "default"
)

// 限流默认速率（未配置分组时的兜底值）
const ThrottleRateFallback = "3/min"

// 限流周期常量（period -> 秒）
const (
	ThrottlePeriodMin  = "min"
	ThrottlePeriodHour = "hour"
	ThrottlePeriodDay  = "day"
)

// 缓存默认配置常量
const RedisPrefixDefault = "ll"
