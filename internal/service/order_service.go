package service

import (
	"time"

	"github.com/littlelemon-next/internal/authz"
	"github.com/littlelemon-next/internal/constants"
	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderActor 订单操作者（ID + 推导角色，用于可见范围判定）
type OrderActor struct {
	UserID uint
	Role   authz.Role
}

// ListOrdersInput 订单列表查询输入
type ListOrdersInput struct {
	Actor    OrderActor
	Status   string
	Page     int
	PageSize int
}

// UpdateOrderInput 订单更新输入
// DeliveryCrewSet 标记请求里是否携带 delivery_crew_id（显式置空也算携带）
type UpdateOrderInput struct {
	Status          *string
	DeliveryCrewID  *uint
	DeliveryCrewSet bool
}

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	menuItemRepo repository.MenuItemRepository
	userRepo     repository.UserRepository
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	menuItemRepo repository.MenuItemRepository,
	userRepo repository.UserRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		menuItemRepo: menuItemRepo,
		userRepo:     userRepo,
	}
}

// List 订单列表：经理与超管看全部，配送员看指派给自己的，其余看自己的
func (s *OrderService) List(input ListOrdersInput) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
		Status:   input.Status,
	}
	switch {
	case input.Actor.Role.IsManagerial():
	case input.Actor.Role == authz.RoleDeliveryCrew:
		filter.DeliveryCrewID = input.Actor.UserID
	default:
		filter.UserID = input.Actor.UserID
	}
	return s.orderRepo.List(filter)
}

// Get 获取可见范围内的订单，范围外视为不存在
func (s *OrderService) Get(id uint, actor OrderActor) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || !s.visible(order, actor) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) visible(order *models.Order, actor OrderActor) bool {
	switch {
	case actor.Role.IsManagerial():
		return true
	case actor.Role == authz.RoleDeliveryCrew:
		return order.DeliveryCrewID != nil && *order.DeliveryCrewID == actor.UserID
	default:
		return order.UserID == actor.UserID
	}
}

// Place 下单：整单入库并清空购物车，任一步失败整体回滚
// 行金额按下单时的菜品现价重算，unit_price 保留购物车快照
func (s *OrderService) Place(userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	order := &models.Order{
		UserID: userID,
		Status: constants.OrderStatusPlaced,
		Total:  models.NewMoneyFromDecimal(decimal.Zero),
		Date:   time.Now(),
	}

	// 读购物车与建单同一事务，避免并发下单读到同一份购物车
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		menuItemRepo := s.menuItemRepo.WithTx(tx)

		cartItems, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		if err := orderRepo.Create(order); err != nil {
			return err
		}

		total := models.NewMoneyFromDecimal(decimal.Zero)
		items := make([]models.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			menuItem, err := menuItemRepo.GetByID(cartItem.MenuItemID)
			if err != nil {
				return err
			}
			if menuItem == nil {
				return ErrMenuItemNotFound
			}
			// TODO: 菜品价格在加购后变动时，行金额与购物车金额会不一致，定价口径待定
			linePrice := menuItem.Price.Mul(cartItem.Quantity)
			items = append(items, models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: cartItem.MenuItemID,
				Quantity:   cartItem.Quantity,
				UnitPrice:  cartItem.UnitPrice,
				Price:      linePrice,
			})
			total = total.Add(linePrice)
		}
		if err := orderRepo.CreateItems(items); err != nil {
			return err
		}

		if err := orderRepo.UpdateFields(order.ID, map[string]interface{}{"total": total}); err != nil {
			return err
		}

		if _, err := cartRepo.ClearByUser(userID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// Update 更新订单：经理与超管可改状态和配送员，其余员工角色只能改状态
func (s *OrderService) Update(id uint, actor OrderActor, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.Get(id, actor)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsManagerial() && input.DeliveryCrewSet {
		return nil, ErrDeliveryCrewForbidden
	}

	fields := map[string]interface{}{}
	if input.Status != nil {
		status := *input.Status
		if status != constants.OrderStatusPlaced && status != constants.OrderStatusOutForDelivery {
			return nil, ErrOrderStatusInvalid
		}
		fields["status"] = status
	}
	if input.DeliveryCrewSet {
		if input.DeliveryCrewID == nil {
			fields["delivery_crew_id"] = nil
		} else {
			crew, err := s.userRepo.GetByID(*input.DeliveryCrewID)
			if err != nil {
				return nil, err
			}
			if crew == nil || !crew.InGroup(constants.GroupDeliveryCrew) {
				return nil, ErrDeliveryCrewInvalid
			}
			fields["delivery_crew_id"] = crew.ID
		}
	}

	if len(fields) > 0 {
		if err := s.orderRepo.UpdateFields(order.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.orderRepo.GetByID(order.ID)
}

// Delete 删除订单及其订单行
func (s *OrderService) Delete(id uint, actor OrderActor) error {
	order, err := s.Get(id, actor)
	if err != nil {
		return err
	}
	return s.orderRepo.Delete(order.ID)
}
