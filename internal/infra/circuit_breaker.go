package infra

import (
	"errors"
	"sync"
	"time"
)

// ── Circuit Breaker ───────────────────────────────────────────────────────────
// Implementação genérica do padrão Circuit Breaker (Closed → Open → Half-Open),
// usada para isolar a API de insights quando o serviço externo está fora do ar.
//
// Estados:
//   - Closed:    operação normal, as chamadas passam
//   - Open:      toda chamada falha imediatamente (fast-fail)
//   - Half-Open: uma chamada de sondagem é permitida para testar recuperação

// CBState é o estado corrente do circuit breaker.
type CBState int

const (
	CBClosed   CBState = iota // normal — chamadas fluem
	CBOpen                    // disparado — fast-fail
	CBHalfOpen                // sondando — uma chamada permitida
)

// String devolve o nome legível do estado (health check / logs).
func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen é retornado quando Execute é chamado com o CB aberto.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig reúne os parâmetros ajustáveis.
type CircuitBreakerConfig struct {
	FailureThreshold int           // falhas consecutivas para abrir (default: 3)
	SuccessThreshold int           // sucessos em half-open para fechar (default: 1)
	OpenTimeout      time.Duration // tempo aberto antes de sondar (default: 30s)
}

// DefaultCBConfig devolve os defaults usados para a API de insights: a
// chamada é opcional e sempre tem fallback, então o breaker abre cedo.
func DefaultCBConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      30 * time.Second,
	}
}

// CircuitBreaker implementa o padrão com transições thread-safe.
type CircuitBreaker struct {
	mu               sync.Mutex
	state            CBState
	failureCount     int
	successCount     int
	lastFailureTime  time.Time
	failureThreshold int
	successThreshold int
	openTimeout      time.Duration
}

// NewCircuitBreaker cria um CB no estado Closed.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 1
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &CircuitBreaker{
		state:            CBClosed,
		failureThreshold: cfg.FailureThreshold,
		successThreshold: cfg.SuccessThreshold,
		openTimeout:      cfg.OpenTimeout,
	}
}

// State devolve o estado corrente (seguro para leituras concorrentes).
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	// Transição automática open → half-open após o timeout
	if cb.state == CBOpen && time.Since(cb.lastFailureTime) >= cb.openTimeout {
		cb.state = CBHalfOpen
		cb.successCount = 0
	}
	return cb.state
}

// Execute roda fn através do circuit breaker.
// Retorna ErrCircuitOpen imediatamente se o CB estiver aberto.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	state := cb.State()

	if state == CBOpen {
		return ErrCircuitOpen
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure()
		return err
	}
	cb.onSuccess()
	return nil
}

// onFailure registra uma falha (chamado sob lock).
func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case CBClosed:
		if cb.failureCount >= cb.failureThreshold {
			cb.state = CBOpen
			cb.successCount = 0
		}
	case CBHalfOpen:
		// Sondagem falhou — volta para open
		cb.state = CBOpen
		cb.failureCount = 0
	}
}

// onSuccess registra um sucesso (chamado sob lock).
func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case CBClosed:
		cb.failureCount = 0
	case CBHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.successThreshold {
			cb.state = CBClosed
			cb.failureCount = 0
			cb.successCount = 0
		}
	}
}
