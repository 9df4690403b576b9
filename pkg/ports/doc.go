// Package ports defines the driven-side interfaces of the solver core,
// decoupling it from concrete adapters such as Redis or in-memory caches.
package ports
