package service

import (
	"testing"

	"github.com/eshop-next/internal/constants"
)

func TestNormalizeOrderStatus(t *testing.T) {
	cases := map[string]string{
		"  Confirmed ": constants.OrderStatusConfirmed,
		"SHIPPED":      constants.OrderStatusShipped,
		"pending":      constants.OrderStatusPending,
	}
	for in, want := range cases {
		if got := NormalizeOrderStatus(in); got != want {
			t.Fatalf("NormalizeOrderStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCanceled,
	} {
		if !IsValidOrderStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "refunded", "done", "confirm"} {
		if IsValidOrderStatus(status) {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}

func TestCanTransitionOrderStatus(t *testing.T) {
	if !CanTransitionOrderStatus(constants.OrderStatusConfirmed, constants.OrderStatusShipped) {
		t.Fatalf("confirmed -> shipped should be allowed")
	}
	if !CanTransitionOrderStatus(constants.OrderStatusDelivered, constants.OrderStatusCanceled) {
		t.Fatalf("delivered -> canceled should be allowed")
	}
	if CanTransitionOrderStatus("refunded", constants.OrderStatusShipped) {
		t.Fatalf("unknown source status should be rejected")
	}
	if CanTransitionOrderStatus(constants.OrderStatusShipped, "refunded") {
		t.Fatalf("unknown target status should be rejected")
	}
}
