// Package admin holds the display registry for the administration surface.
// Each managed entity declares the columns its list view shows; the registry
// is assembled once at startup and served read-only after that.
package admin

import "sort"

// EntityDisplay describes how one entity appears in admin list views
type EntityDisplay struct {
	Entity      string   `json:"entity"`
	ListColumns []string `json:"list_columns"`
}

// Registry maps an entity name to its display declaration
type Registry struct {
	entries map[string]EntityDisplay
}

// NewRegistry builds the registry with every managed entity registered
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]EntityDisplay)}

	r.register("camera", []string{"id", "uuid", "type", "ip_address", "location", "created_at", "updated_at"})
	r.register("camera_link", []string{"id", "uuid", "tourniquet", "created_at", "updated_at"})
	r.register("employee", []string{"id", "uuid", "full_name", "created_at", "updated_at"})
	r.register("employee_group", []string{"id", "uuid", "title", "created_at", "updated_at"})
	r.register("employee_group_time_sheet", []string{"id", "uuid", "employee_group", "tourniquet", "start_time", "end_time", "created_at", "updated_at"})
	r.register("location", []string{"id", "uuid", "title", "created_at", "updated_at"})
	r.register("tourniquet_lock", []string{"id", "uuid", "lock_type", "state", "ip_address", "location", "created_at", "updated_at"})
	r.register("tourniquet_time_sheet", []string{"id", "uuid", "employee", "tourniquet", "start_time", "end_time", "created_at", "updated_at"})
	r.register("user", []string{"id", "uuid", "username", "name", "is_admin", "created_at", "updated_at"})

	return r
}

func (r *Registry) register(entity string, columns []string) {
	r.entries[entity] = EntityDisplay{Entity: entity, ListColumns: columns}
}

// Get returns the display declaration for one entity
func (r *Registry) Get(entity string) (EntityDisplay, bool) {
	d, ok := r.entries[entity]
	return d, ok
}

// List returns all declarations sorted by entity name
func (r *Registry) List() []EntityDisplay {
	out := make([]EntityDisplay, 0, len(r.entries))
	for _, d := range r.entries {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}
