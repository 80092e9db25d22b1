package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/me/campus/pkg/model"
)

// ListPlans returns the subscription plans offered on the pricing page.
func (c *Client) ListPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	if err := c.get(ctx, "payments.plans", "/api/Payment/plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ListPayments returns the payment history visible to the caller.
// Teachers see payments for their courses; students see their own.
func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := c.get(ctx, "payments.list", "/api/Payment", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CheckDiscount validates a discount code against a plan.
func (c *Client) CheckDiscount(ctx context.Context, planID, code string) (*model.DiscountResult, error) {
	var result model.DiscountResult
	path := fmt.Sprintf("/api/Payment/plans/%s/discount?code=%s", planID, url.QueryEscape(code))
	if err := c.get(ctx, "payments.discount", path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Subscribe purchases a plan for the calling student.
func (c *Client) Subscribe(ctx context.Context, planID, discountCode string) (*model.Subscription, error) {
	payload := struct {
		PlanID       string `json:"planId"`
		DiscountCode string `json:"discountCode,omitempty"`
	}{PlanID: planID, DiscountCode: discountCode}

	var sub model.Subscription
	if err := c.post(ctx, "payments.subscribe", "/api/Payment/subscribe", payload, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
