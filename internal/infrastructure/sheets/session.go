package sheets

import (
	"sync"
	"time"
)

// SessionState ciclo de vida de la credencial de Google.
type SessionState int

const (
	SessionUnset   SessionState = iota // nunca hubo sign-in
	SessionPending                     // sign-in en curso
	SessionActive                      // token utilizable
	SessionExpired                     // token vencido; equivale a no tener credencial
)

// String nombre del estado para respuestas y logs.
func (st SessionState) String() string {
	switch st {
	case SessionPending:
		return "PENDING"
	case SessionActive:
		return "ACTIVE"
	case SessionExpired:
		return "EXPIRED"
	default:
		return "UNSET"
	}
}

// Session contexto de sesión inyectable que custodia el bearer token de la
// API de Sheets. Lo muta únicamente el flujo de sign-in (colaborador
// externo); el store lo lee en cada petición vía Snapshot y NO debe asumir
// que el token sigue vigente durante toda la petición: una petición emitida
// a mitad de una transición de sign-in trabaja con la foto tomada al inicio.
type Session struct {
	mu        sync.RWMutex
	state     SessionState
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewSession construye una sesión sin credencial.
func NewSession() *Session {
	return &Session{state: SessionUnset, now: time.Now}
}

// BeginSignIn marca el sign-in como en curso. La credencial anterior deja
// de ser utilizable.
func (s *Session) BeginSignIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionPending
	s.token = ""
}

// Activate instala el token recibido del flujo OAuth. ttl cero = sin
// vencimiento conocido (el backend rechazará cuando expire de verdad).
func (s *Session) Activate(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionActive
	s.token = token
	if ttl != 0 {
		s.expiresAt = s.now().Add(ttl)
	} else {
		s.expiresAt = time.Time{}
	}
}

// Clear descarta la credencial (sign-out).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionUnset
	s.token = ""
	s.expiresAt = time.Time{}
}

// Snapshot devuelve la credencial válida en este instante. ok=false cuando
// no hay token activo; las lecturas caen entonces al dataset semilla y las
// escrituras fallan con ErrAuthenticationRequired.
func (s *Session) Snapshot() (token string, ok bool) {
	s.mu.RLock()
	state, tok, exp := s.state, s.token, s.expiresAt
	s.mu.RUnlock()

	if state != SessionActive || tok == "" {
		return "", false
	}
	if !exp.IsZero() && !s.now().Before(exp) {
		s.mu.Lock()
		if s.state == SessionActive && s.expiresAt.Equal(exp) {
			s.state = SessionExpired
			s.token = ""
		}
		s.mu.Unlock()
		return "", false
	}
	return tok, true
}

// State devuelve el estado actual del ciclo de vida.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
