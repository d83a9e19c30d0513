package gateway

import (
	"sync"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// Registry maps each payment method to the gateway capability that serves it.
// A method is served either synchronously or through a redirect, never both.
type Registry struct {
	mu          sync.RWMutex
	chargers    map[entity.PaymentMethod]ChargeGateway
	redirectors map[entity.PaymentMethod]RedirectGateway
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		chargers:    make(map[entity.PaymentMethod]ChargeGateway),
		redirectors: make(map[entity.PaymentMethod]RedirectGateway),
	}
}

// RegisterCharger serves method synchronously through g
func (r *Registry) RegisterCharger(method entity.PaymentMethod, g ChargeGateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.redirectors, method)
	r.chargers[method] = g
}

// RegisterRedirector serves method through the provider redirect flow of g
func (r *Registry) RegisterRedirector(method entity.PaymentMethod, g RedirectGateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chargers, method)
	r.redirectors[method] = g
}

// Charger returns the synchronous gateway for method, if any
func (r *Registry) Charger(method entity.PaymentMethod) (ChargeGateway, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.chargers[method]
	return g, ok
}

// Redirector returns the redirect gateway for method, if any
func (r *Registry) Redirector(method entity.PaymentMethod) (RedirectGateway, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.redirectors[method]
	return g, ok
}

// RedirectMethods lists the methods served through a redirect
func (r *Registry) RedirectMethods() []entity.PaymentMethod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	methods := make([]entity.PaymentMethod, 0, len(r.redirectors))
	for _, m := range entity.PaymentMethods {
		if _, ok := r.redirectors[m]; ok {
			methods = append(methods, m)
		}
	}
	return methods
}
