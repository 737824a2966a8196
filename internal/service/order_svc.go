package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"selling-sisters-api/internal/api/dto"
)

// ==================== 错误类型 ====================

// DuplicateOrderError 同一幂等 key 的重复提交
type DuplicateOrderError struct {
	OrderID string
}

func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("duplicate order submission, original order %s", e.OrderID)
}

// ValidationError 订单校验失败，Details 里是给前端展示的错误列表
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "order validation failed: " + strings.Join(e.Details, "; ")
}

// EmailDeliveryError 店主通知邮件发送失败，订单视为未接收
type EmailDeliveryError struct {
	Err error
}

func (e *EmailDeliveryError) Error() string {
	return "failed to deliver order notification: " + e.Err.Error()
}

func (e *EmailDeliveryError) Unwrap() error { return e.Err }

// ==================== 订单号 ====================

const orderIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID 生成 ORD-YYYYMMDD-XXXXXX 格式的订单号
func GenerateOrderID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 失败极罕见，退化到纳秒时间戳取模
		now := time.Now().UnixNano()
		for i := range buf {
			buf[i] = orderIDCharset[now%int64(len(orderIDCharset))]
			now /= int64(len(orderIDCharset))
		}
	} else {
		for i := range buf {
			buf[i] = orderIDCharset[int(buf[i])%len(orderIDCharset)]
		}
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), string(buf))
}

// ==================== 订单服务 ====================

// OrderService 订单提交流水线:
// 幂等检查 -> 校验 -> 生成订单号 -> 店主邮件 -> 客户确认邮件(尽力) -> 记录幂等
type OrderService struct {
	sender    EmailSender
	guard     *IdempotencyGuard
	recipient string // 店主收件地址
	from      string
	logger    *zap.Logger
}

func NewOrderService(sender EmailSender, guard *IdempotencyGuard, recipient, from string, logger *zap.Logger) *OrderService {
	if from == "" {
		from = "Selling Sisters <orders@resend.dev>"
	}
	return &OrderService{
		sender:    sender,
		guard:     guard,
		recipient: recipient,
		from:      from,
		logger:    logger,
	}
}

// Submit 处理一次订单提交，成功返回订单号
func (s *OrderService) Submit(ctx context.Context, req dto.SubmitOrderReq) (string, error) {
	start := time.Now()

	// 幂等 key 由前端生成，缺失说明请求不是正常客户端发出的
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return "", &ValidationError{Details: []string{"Missing idempotency_key"}}
	}

	// 幂等检查: 重复提交直接返回首次的订单号
	if orderID, found := s.guard.Lookup(ctx, req.IdempotencyKey); found {
		s.logger.Info("duplicate_order_blocked",
			zap.String("order_id", orderID),
			zap.String("product_id", req.Details.ProductID))
		return "", &DuplicateOrderError{OrderID: orderID}
	}

	// 校验联系方式和订单明细，两类错误合并返回
	errs := ValidateContactInfo(req.Contact)
	errs = append(errs, ValidateOrderDetails(req.Details)...)
	if len(errs) > 0 {
		s.logger.Info("validation_failed",
			zap.Strings("errors", errs),
			zap.String("product_id", req.Details.ProductID))
		return "", &ValidationError{Details: errs}
	}

	orderID := GenerateOrderID()
	s.logger.Info("order_submitted",
		zap.String("order_id", orderID),
		zap.String("type", req.Details.Type),
		zap.String("product_id", req.Details.ProductID))

	// 店主邮件是订单的实际存储，发送失败即订单失败
	ownerMsg := EmailMessage{
		From:    s.from,
		To:      []string{s.recipient},
		Subject: emailSubject(req.Contact, req.Details),
		HTML:    ownerEmailHTML(req.Contact, req.Details, orderID),
		Text:    ownerEmailText(req.Contact, req.Details, orderID),
	}
	if req.Contact.Email != "" {
		ownerMsg.ReplyTo = req.Contact.Email
	}
	if err := s.sender.Send(ctx, ownerMsg); err != nil {
		s.logger.Error("email_send_failed",
			zap.String("order_id", orderID),
			zap.Error(err))
		return "", &EmailDeliveryError{Err: err}
	}
	s.logger.Info("email_sent", zap.String("order_id", orderID))

	// 客户确认邮件尽力而为，失败不影响订单
	if req.Contact.Email != "" {
		confirmMsg := EmailMessage{
			From:    s.from,
			To:      []string{req.Contact.Email},
			Subject: confirmationSubject(req.Contact),
			HTML:    customerConfirmationHTML(req.Contact, req.Details, orderID),
			Text:    customerConfirmationText(req.Contact, req.Details, orderID),
		}
		if err := s.sender.Send(ctx, confirmMsg); err != nil {
			s.logger.Warn("confirmation_email_failed",
				zap.String("order_id", orderID),
				zap.Error(err))
		} else {
			s.logger.Info("confirmation_email_sent", zap.String("order_id", orderID))
		}
	}

	// 幂等记录放在最后: 只有完整成功的订单才占用 key
	s.guard.Record(ctx, req.IdempotencyKey, orderID)

	s.logger.Info("order_completed",
		zap.String("order_id", orderID),
		zap.Duration("duration", time.Since(start)))
	return orderID, nil
}
