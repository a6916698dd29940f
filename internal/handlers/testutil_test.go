package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akorfaa/ecommerce-api/internal/handlers"
	"github.com/akorfaa/ecommerce-api/internal/routes"
	"github.com/akorfaa/ecommerce-api/internal/store"
)

// fakeCollection is an in-memory store.Collection. Documents are cloned on
// the way out so handler-side normalization cannot corrupt the fixture.
type fakeCollection struct {
	docs      []bson.M
	insertErr error
	findErr   error
}

func (f *fakeCollection) Find(_ context.Context, filter bson.M) ([]bson.M, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []bson.M
	for _, doc := range f.docs {
		if matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

func (f *fakeCollection) FindOne(_ context.Context, filter bson.M) (bson.M, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, doc := range f.docs {
		if matches(doc, filter) {
			return clone(doc), nil
		}
	}
	return nil, store.ErrNoDocument
}

func (f *fakeCollection) InsertOne(_ context.Context, doc any) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}

	m, err := toBSON(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	f.docs = append(f.docs, m)
	return id, nil
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		if key == "$or" {
			alts, _ := want.([]bson.M)
			anyMatch := false
			for _, alt := range alts {
				if matches(doc, alt) {
					anyMatch = true
					break
				}
			}
			if !anyMatch {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(doc[key], want) {
			return false
		}
	}
	return true
}

// toBSON round-trips through bson so fixtures get the same numeric widths
// and nested map types the driver produces.
func toBSON(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func clone(doc bson.M) bson.M {
	out, err := toBSON(doc)
	if err != nil {
		panic(err)
	}
	return out
}

func newStore() (*store.Store, *fakeCollection, *fakeCollection, *fakeCollection) {
	products := &fakeCollection{}
	users := &fakeCollection{}
	carts := &fakeCollection{}
	return &store.Store{Products: products, Users: users, Carts: carts}, products, users, carts
}

func newRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, handlers.New(s))
	return r
}

func seedProduct(f *fakeCollection, name string, price float64) string {
	id := primitive.NewObjectID()
	f.docs = append(f.docs, clone(bson.M{"_id": id, "name": name, "price": price}))
	return id.Hex()
}

func seedUser(f *fakeCollection, username, email, password string) string {
	id := primitive.NewObjectID()
	f.docs = append(f.docs, clone(bson.M{
		"_id":      id,
		"username": username,
		"email":    email,
		"password": password,
	}))
	return id.Hex()
}

func seedCartItem(f *fakeCollection, userID, productID string, quantity int) {
	f.docs = append(f.docs, clone(bson.M{
		"_id":     primitive.NewObjectID(),
		"user_id": userID,
		"item":    bson.M{"product_id": productID, "quantity": quantity},
	}))
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
		}
	}
	return w, payload
}
