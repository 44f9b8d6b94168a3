package controller

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaria-storefront/cart"
	"pizzaria-storefront/checkout"
	"pizzaria-storefront/pricing"
	"pizzaria-storefront/repository"
	"pizzaria-storefront/service"
	"pizzaria-storefront/session"
)

// flushRecorder signals every Flush on a channel
type flushRecorder struct {
	*httptest.ResponseRecorder
	flushes chan struct{}
}

func (r *flushRecorder) Flush() {
	r.ResponseRecorder.Flush()
	r.flushes <- struct{}{}
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	channel, err := checkout.NewWhatsAppChannel("5511999990000")
	require.NoError(t, err)
	return session.NewStore(session.Dependencies{Pricer: engine, Channel: channel}, time.Hour)
}

func TestWithSessionSetsCookieOnce(t *testing.T) {
	store := newTestStore(t)
	var seen []string
	handler := WithSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, sessionFrom(r).ID)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Result().Cookies())

	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}

func TestEventsStreamsCartChanges(t *testing.T) {
	store := newTestStore(t)
	sess, _ := store.GetOrCreate("")
	products := repository.NewMemoryProductRepository()
	catalog := service.NewCatalogService(products, repository.NewMemoryAdditionalRepository(products), nil)
	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	handler := WithSession(store)(http.HandlerFunc(NewCartController(catalog, engine).Events))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/cart/events", nil).WithContext(ctx)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	rec := &flushRecorder{ResponseRecorder: httptest.NewRecorder(), flushes: make(chan struct{}, 4)}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		handler.ServeHTTP(rec, req)
	}()

	waitFlush := func() {
		select {
		case <-rec.flushes:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for event")
		}
	}

	waitFlush()
	sess.Lock()
	sess.Cart.Toggle()
	sess.Unlock()
	waitFlush()

	cancel()
	wg.Wait()

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(body, "event: cart\n"))
	assert.Contains(t, body, `"isOpen":true`)
}

func TestShutdownEndsOpenEventStreams(t *testing.T) {
	store := newTestStore(t)
	products := repository.NewMemoryProductRepository()
	catalog := service.NewCatalogService(products, repository.NewMemoryAdditionalRepository(products), nil)
	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	c := NewCartController(catalog, engine)

	srv := httptest.NewServer(WithSession(store)(http.HandlerFunc(c.Events)))
	srv.Config.RegisterOnShutdown(c.CloseStreams)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cart/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: cart\n", line)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	require.NoError(t, srv.Config.Shutdown(ctx))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCloseStreamsIsIdempotent(t *testing.T) {
	c := NewCartController(nil, nil)
	c.CloseStreams()
	assert.NotPanics(t, c.CloseStreams)
}

func TestSelectionMessage(t *testing.T) {
	assert.Equal(t, "Selecione um tamanho", selectionMessage(cart.ErrVariationRequired))
	assert.Equal(t, "Produto não encontrado", selectionMessage(repository.ErrNotFound))
	assert.Equal(t, "Não foi possível adicionar o item ao carrinho", selectionMessage(errors.New("boom")))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(repository.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrInvalidProduct))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("db down")))
}
