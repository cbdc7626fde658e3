package domain

// Collection names for the six entity collections owned by the store.
const (
	CollectionProperties   = "properties"
	CollectionTenants      = "tenants"
	CollectionMaintenance  = "maintenance"
	CollectionPayments     = "payments"
	CollectionMessages     = "messages"
	CollectionAppointments = "appointments"
)

// Collections lists all collection names in a stable order.
var Collections = []string{
	CollectionProperties,
	CollectionTenants,
	CollectionMaintenance,
	CollectionPayments,
	CollectionMessages,
	CollectionAppointments,
}

// ValidCollection reports whether name is one of the six collections.
func ValidCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
