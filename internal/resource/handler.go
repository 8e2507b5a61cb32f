package resource

import "net/http"

// Handler serves the routes of a resource. Only the methods enabled in the
// resource's Config are ever routed; the others may be left to
// [Unimplemented].
type Handler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPaginated(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Unimplemented answers 501 for every method. Embed it in handlers that
// serve only some routes.
type Unimplemented struct{}

func (Unimplemented) Create(w http.ResponseWriter, r *http.Request)        { notImplemented(w, r) }
func (Unimplemented) List(w http.ResponseWriter, r *http.Request)          { notImplemented(w, r) }
func (Unimplemented) ListPaginated(w http.ResponseWriter, r *http.Request) { notImplemented(w, r) }
func (Unimplemented) Get(w http.ResponseWriter, r *http.Request)           { notImplemented(w, r) }
func (Unimplemented) Update(w http.ResponseWriter, r *http.Request)        { notImplemented(w, r) }
func (Unimplemented) Patch(w http.ResponseWriter, r *http.Request)         { notImplemented(w, r) }
func (Unimplemented) Delete(w http.ResponseWriter, r *http.Request)        { notImplemented(w, r) }

func notImplemented(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotImplemented, MsgNotAllowed, nil, false)
}
