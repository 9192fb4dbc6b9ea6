package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or transaction) in the request context.
const DBContextKey = contextKey("db")

// ShopContextKey holds the authenticated tenant (shop domain) in the request context.
const ShopContextKey = contextKey("shop")
