package templatecache_test

import (
	"context"
	"strings"
	"testing"

	"github.com/workerbridge/exprlang/internal/templatecache"
)

func openCache(t *testing.T) *templatecache.Cache {
	t.Helper()
	c, err := templatecache.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLookupMissThenHit(t *testing.T) {
	c := openCache(t)
	ctx := context.Background()

	first, err := c.Lookup(ctx, "${request.path}")
	if err != nil {
		t.Fatalf("Lookup (miss): %v", err)
	}
	if first.Hit {
		t.Fatal("expected first lookup to be a miss")
	}
	if first.ParseErr != "" {
		t.Fatalf("expected successful parse, got error %q", first.ParseErr)
	}
	if !strings.Contains(first.TreeDump, "SelectField") {
		t.Fatalf("expected a SelectField in the dump, got %q", first.TreeDump)
	}

	second, err := c.Lookup(ctx, "${request.path}")
	if err != nil {
		t.Fatalf("Lookup (hit): %v", err)
	}
	if !second.Hit {
		t.Fatal("expected second lookup to be a hit")
	}
	if second.TreeDump != first.TreeDump {
		t.Fatalf("hit dump mismatch: %q vs %q", second.TreeDump, first.TreeDump)
	}
	if second.CorrelationID == first.CorrelationID {
		t.Fatal("expected distinct correlation IDs per lookup")
	}
}

func TestLookupCachesParseFailureWithoutRetrying(t *testing.T) {
	c := openCache(t)
	ctx := context.Background()

	const broken = "${request.}"

	first, err := c.Lookup(ctx, broken)
	if err != nil {
		t.Fatalf("Lookup (miss): %v", err)
	}
	if first.Hit {
		t.Fatal("expected first lookup to be a miss")
	}
	if first.ParseErr == "" {
		t.Fatal("expected a cached parse error")
	}

	second, err := c.Lookup(ctx, broken)
	if err != nil {
		t.Fatalf("Lookup (hit): %v", err)
	}
	if !second.Hit {
		t.Fatal("expected second lookup to be a hit even for a failing template")
	}
	if second.ParseErr != first.ParseErr {
		t.Fatalf("cached error mismatch: %q vs %q", second.ParseErr, first.ParseErr)
	}
}

func TestLookupDistinguishesDifferentSources(t *testing.T) {
	c := openCache(t)
	ctx := context.Background()

	a, err := c.Lookup(ctx, "${request.a}")
	if err != nil {
		t.Fatalf("Lookup a: %v", err)
	}
	b, err := c.Lookup(ctx, "${request.b}")
	if err != nil {
		t.Fatalf("Lookup b: %v", err)
	}
	if a.TreeDump == b.TreeDump {
		t.Fatalf("expected different dumps for different templates, both were %q", a.TreeDump)
	}
}
