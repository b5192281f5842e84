// Package app contains the application services of the speech service.
// Services orchestrate the use cases over the ports and own transaction
// boundaries; they know nothing about HTTP or SQL.
package app
