package resource

import "strings"

// Method is one CRUD operation of a resource.
type Method uint8

const (
	Create Method = 1 << iota
	// List enables both GET / and the paginated GET /paginate/.
	List
	Get
	Update
	Patch
	Delete
)

// routeOrder is the order routes are registered in.
var routeOrder = []Method{Create, List, Get, Update, Patch, Delete}

var methodNames = map[Method]string{
	Create: "CREATE",
	List:   "LIST",
	Get:    "GET",
	Update: "UPDATE",
	Patch:  "PATCH",
	Delete: "DELETE",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// mutating reports whether m changes state. Mutating methods get the
// Danger middleware bucket.
func (m Method) mutating() bool {
	return m == Create || m == Update || m == Patch || m == Delete
}

// MethodSet is a set of methods.
type MethodSet uint8

// AllMethods enables every route.
const AllMethods = MethodSet(Create | List | Get | Update | Patch | Delete)

// Methods builds a set from ms.
func Methods(ms ...Method) MethodSet {
	var s MethodSet
	for _, m := range ms {
		s |= MethodSet(m)
	}
	return s
}

func (s MethodSet) Has(m Method) bool {
	return s&MethodSet(m) != 0
}

func (s MethodSet) String() string {
	var names []string
	for _, m := range routeOrder {
		if s.Has(m) {
			names = append(names, m.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
