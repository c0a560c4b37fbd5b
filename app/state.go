package app

import (
	"time"

	"arplace/asset"
	"arplace/internal/future"
	"arplace/placement"
	"arplace/xr"

	"github.com/google/uuid"
)

// SessionState is all mutable state of the placement loop. The driver owns
// it and mutates it only from the frame loop.
type SessionState struct {
	Path       xr.Path
	Presenting bool

	Session   xr.Session
	SessionID uuid.UUID
	RefSpace  xr.ReferenceSpace

	// HitTestRequested is set before the subscription request is issued and
	// stays set for the rest of the session, even if the request fails.
	HitTestRequested bool
	HitTestSource    xr.HitTestSource
	hitTestReq       *future.Future[xr.HitTestSource]

	Reticle placement.ReticleState

	Model  *asset.Model
	Player *asset.Player
	load   *future.Future[*asset.Model]

	LastTimestamp time.Duration
	framed        bool
}

// resetSession clears everything tied to an immersive session.
func (st *SessionState) resetSession() {
	st.Presenting = false
	st.Session = nil
	st.SessionID = uuid.Nil
	st.RefSpace = nil
	st.HitTestRequested = false
	st.HitTestSource = nil
	st.hitTestReq = nil
	st.Reticle = placement.ReticleState{}
}
