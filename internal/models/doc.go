// Package models defines the shopping list, item, tier and preference types
// shared by the store, the entitlement gate and the renderers.
//
// Lists are persisted as a JSON array per identity, so every exported field
// carries a json tag. Tier is never persisted; the entitlement package
// derives it from identity.
package models
