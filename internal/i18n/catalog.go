package i18n

// catalogs 各语言文案表
var catalogs = map[string]map[string]string{
	LocaleZH: {
		"success":                        "成功",
		"error.bad_request":              "请求参数错误",
		"error.unauthorized":             "未登录或登录已过期",
		"error.forbidden":                "没有权限执行该操作",
		"error.not_found":                "资源不存在",
		"error.internal":                 "服务器内部错误",
		"error.auth_header_missing":      "缺少认证信息",
		"error.auth_header_invalid":      "认证信息格式错误",
		"error.jwt_secret_missing":       "服务端认证配置缺失",
		"error.token_invalid":            "登录凭证无效",
		"error.user_disabled":            "账号已被禁用",
		"error.rate_limit_unavailable":   "限流服务暂不可用，请稍后重试",
		"error.rate_limited_wait":        "操作过于频繁，请 %d 秒后重试",
		"error.invalid_credentials":      "邮箱或密码错误",
		"error.email_taken":              "邮箱已被注册",
		"error.password_too_weak":        "密码强度不足",
		"error.product_not_found":        "商品不存在",
		"error.product_unavailable":      "商品暂不可购买",
		"error.supplier_not_found":       "供应商不存在",
		"error.cart_item_not_found":      "购物车条目不存在",
		"error.cart_quantity_invalid":    "商品数量必须为正整数",
		"error.contact_not_found":        "联系人不存在",
		"error.order_not_found":          "订单不存在",
		"error.order_status_invalid":     "订单状态不合法",
		"error.order_transition_invalid": "订单状态不允许该变更",
		"error.email_invalid":            "邮箱格式错误",
		"error.cart_not_found":           "购物车不存在",
		"error.product_price_invalid":    "商品价格不合法",
		"error.product_stock_invalid":    "商品库存不合法",
		"error.register_failed":          "注册失败",
		"error.login_failed":             "登录失败",
		"error.user_fetch_failed":        "获取用户信息失败",
		"error.cart_fetch_failed":        "获取购物车失败",
		"error.cart_update_failed":       "更新购物车失败",
		"error.contact_fetch_failed":     "获取联系人失败",
		"error.contact_save_failed":      "保存联系人失败",
		"error.contact_delete_failed":    "删除联系人失败",
		"error.order_confirm_failed":     "订单确认失败",
		"error.order_fetch_failed":       "获取订单失败",
		"error.order_update_failed":      "更新订单失败",
		"error.product_fetch_failed":     "获取商品失败",
		"error.product_save_failed":      "保存商品失败",
		"error.product_delete_failed":    "删除商品失败",
		"error.supplier_fetch_failed":    "获取供应商失败",
		"error.supplier_save_failed":     "保存供应商失败",
		"error.supplier_delete_failed":   "删除供应商失败",

		"order.status.pending":   "待确认",
		"order.status.confirmed": "已确认",
		"order.status.shipped":   "已发货",
		"order.status.delivered": "已送达",
		"order.status.canceled":  "已取消",

		"email.order_confirm.subject": "订单确认通知",
		"email.order_confirm.body":    "您的订单 #%d 已确认，共 %d 件商品，合计 %s。感谢您的购买！",
		"email.order_status.subject":  "订单状态更新：%s",
		"email.order_status.body":     "您的订单 #%d 当前状态为：%s。",
	},
	LocaleEN: {
		"success":                        "OK",
		"error.bad_request":              "invalid request parameters",
		"error.unauthorized":             "not logged in or session expired",
		"error.forbidden":                "operation not permitted",
		"error.not_found":                "resource not found",
		"error.internal":                 "internal server error",
		"error.auth_header_missing":      "authorization header missing",
		"error.auth_header_invalid":      "authorization header malformed",
		"error.jwt_secret_missing":       "server auth config missing",
		"error.token_invalid":            "invalid credentials token",
		"error.user_disabled":            "account disabled",
		"error.rate_limit_unavailable":   "rate limiter unavailable, try again later",
		"error.rate_limited_wait":        "too many attempts, retry in %d seconds",
		"error.invalid_credentials":      "invalid email or password",
		"error.email_taken":              "email already registered",
		"error.password_too_weak":        "password does not meet policy",
		"error.product_not_found":        "product not found",
		"error.product_unavailable":      "product not available",
		"error.supplier_not_found":       "supplier not found",
		"error.cart_item_not_found":      "cart item not found",
		"error.cart_quantity_invalid":    "quantity must be a positive integer",
		"error.contact_not_found":        "contact not found",
		"error.order_not_found":          "order not found",
		"error.order_status_invalid":     "invalid order status",
		"error.order_transition_invalid": "order status transition not allowed",
		"error.email_invalid":            "invalid email address",
		"error.cart_not_found":           "cart not found",
		"error.product_price_invalid":    "invalid product price",
		"error.product_stock_invalid":    "invalid product stock",
		"error.register_failed":          "registration failed",
		"error.login_failed":             "login failed",
		"error.user_fetch_failed":        "failed to fetch user profile",
		"error.cart_fetch_failed":        "failed to fetch cart",
		"error.cart_update_failed":       "failed to update cart",
		"error.contact_fetch_failed":     "failed to fetch contacts",
		"error.contact_save_failed":      "failed to save contact",
		"error.contact_delete_failed":    "failed to delete contact",
		"error.order_confirm_failed":     "failed to confirm order",
		"error.order_fetch_failed":       "failed to fetch orders",
		"error.order_update_failed":      "failed to update order",
		"error.product_fetch_failed":     "failed to fetch products",
		"error.product_save_failed":      "failed to save product",
		"error.product_delete_failed":    "failed to delete product",
		"error.supplier_fetch_failed":    "failed to fetch suppliers",
		"error.supplier_save_failed":     "failed to save supplier",
		"error.supplier_delete_failed":   "failed to delete supplier",

		"order.status.pending":   "pending",
		"order.status.confirmed": "confirmed",
		"order.status.shipped":   "shipped",
		"order.status.delivered": "delivered",
		"order.status.canceled":  "canceled",

		"email.order_confirm.subject": "Order Confirmation",
		"email.order_confirm.body":    "Your order #%d has been confirmed: %d item(s), total %s. Thank you for your purchase!",
		"email.order_status.subject":  "Order Status Update: %s",
		"email.order_status.body":     "Your order #%d is now: %s.",
	},
}
