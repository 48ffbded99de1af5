package helix

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-twitch/core"
	"github.com/goliatone/go-twitch/devkit"
)

func TestVideos_GetByUserIDAppendsFilter(t *testing.T) {
	client, fake := newTestClient(t)

	if _, err := NewVideos(client).GetByUserID(context.Background(), "99", core.Form{}.Add("first", "5")); err != nil {
		t.Fatalf("get by user id: %v", err)
	}
	req := lastRequest(t, fake)
	if got := devkit.Path(req); got != "/videos?user_id=99&first=5" {
		t.Fatalf("unexpected path %q", got)
	}
	if req.Headers["Client-ID"] != "abc123" {
		t.Fatalf("expected client id auth")
	}
	if _, ok := headerValue(req.Headers, "Authorization"); ok {
		t.Fatalf("expected no Authorization header")
	}
}

func TestVideos_GetByGameIDEncodesFilter(t *testing.T) {
	client, fake := newTestClient(t)

	filter := core.Form{}.Add("period", "week").Add("sort", "views").Add("language", "en")
	if _, err := NewVideos(client).GetByGameID(context.Background(), "493057", filter); err != nil {
		t.Fatalf("get by game id: %v", err)
	}
	if got := devkit.Path(lastRequest(t, fake)); got != "/videos?game_id=493057&period=week&sort=views&language=en" {
		t.Fatalf("unexpected path %q", got)
	}

	if _, err := NewVideos(client).GetByGameID(context.Background(), "493057", nil); err != nil {
		t.Fatalf("get by game id: %v", err)
	}
	if got := devkit.Path(lastRequest(t, fake)); got != "/videos?game_id=493057" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestVideos_GetByIDUsesClientID(t *testing.T) {
	client, fake := newTestClient(t)

	if _, err := NewVideos(client).GetByID(context.Background(), []string{"234482848", "234482849"}); err != nil {
		t.Fatalf("get by id: %v", err)
	}
	req := lastRequest(t, fake)
	if got := devkit.Path(req); got != "/videos?id=234482848&id=234482849" {
		t.Fatalf("unexpected path %q", got)
	}
	if req.Headers["Client-ID"] != "abc123" {
		t.Fatalf("expected client id auth")
	}
}

func TestVideos_TransportFailureSurfacesVerbatim(t *testing.T) {
	client, _ := newTestClient(t, devkit.Failure(errors.New("no such host")))

	result, err := NewVideos(client).GetByID(context.Background(), []string{"1"})
	if err != nil {
		t.Fatalf("expected result value, got %v", err)
	}
	if failure := result.Failure(); failure == nil || failure.Status != 500 || failure.Message != "no such host" {
		t.Fatalf("unexpected failure %#v", result.Failure())
	}
}

func TestVideos_NilClientReturnsError(t *testing.T) {
	if _, err := NewVideos(nil).GetByID(context.Background(), nil); err == nil {
		t.Fatalf("expected error for videos without a client")
	}
}
