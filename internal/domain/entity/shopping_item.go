package entity

// ShoppingItem bundles a seller and product snapshot with the distance
// from the search origin. It is produced by nearby search and consumed
// by the route planner. Both snapshots are carried by value so that
// plan-time data cannot alias search-time data; the item is never
// persisted itself.
type ShoppingItem struct {
	Seller     Seller
	Product    Product
	DistanceKm float64
}
