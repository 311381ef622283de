package firebase

import (
	"context"
	"fmt"
	"time"

	"admin-claims/internal/domain/claims"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

type Firestore struct {
	Client *firestore.Client
}

func NewFirestore(ctx context.Context, app *firebase.App) (*Firestore, error) {
	c, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: firestore: %v", claims.ErrSessionInit, err)
	}
	return &Firestore{Client: c}, nil
}

func (f *Firestore) Close() {
	if f == nil || f.Client == nil {
		return
	}
	_ = f.Client.Close()
}

// ClaimsMirror keeps <collection>/<uid> in step with the user's custom claims.
type ClaimsMirror struct {
	client     *firestore.Client
	collection string
	now        func() time.Time
}

func (f *Firestore) ClaimsMirror(collection string) *ClaimsMirror {
	return &ClaimsMirror{client: f.Client, collection: collection, now: time.Now}
}

// MirrorClaims merges c into the user's document; other fields are kept.
func (m *ClaimsMirror) MirrorClaims(ctx context.Context, uid string, c claims.Claims) error {
	_, err := m.client.Collection(m.collection).Doc(uid).Set(ctx, mirrorDoc(c, m.now()), firestore.MergeAll)
	return err
}

func mirrorDoc(c claims.Claims, now time.Time) map[string]interface{} {
	doc := make(map[string]interface{}, len(c)+1)
	for k, v := range c {
		doc[k] = v
	}
	doc["claimsUpdatedAt"] = now.Unix()
	return doc
}
