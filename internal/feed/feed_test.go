package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/mp-article/internal/testutils"
)

type countingSource struct {
	calls [][]string
	names map[string]string
	err   error
}

func (s *countingSource) NamesByIDs(_ context.Context, mpIDs []string) (map[string]string, error) {
	s.calls = append(s.calls, mpIDs)
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]string)
	for _, id := range mpIDs {
		if name, ok := s.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func TestNameResolverCachesWithinRequest(t *testing.T) {
	src := &countingSource{names: map[string]string{"a": "Feed A", "b": "Feed B"}}
	resolver := NewNameResolver(src)
	ctx := context.Background()

	require.NoError(t, resolver.Load(ctx, []string{"a", "a", "b", "ghost", "a"}))
	require.Len(t, src.calls, 1)
	assert.ElementsMatch(t, []string{"a", "b", "ghost"}, src.calls[0])

	assert.Equal(t, "Feed A", resolver.Name("a"))
	assert.Equal(t, "Feed B", resolver.Name("b"))
	assert.Equal(t, UnknownFeedName, resolver.Name("ghost"))

	// 已缓存的ID（包括不存在的）不再查询
	require.NoError(t, resolver.Load(ctx, []string{"a", "ghost"}))
	name, err := resolver.Resolve(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Feed B", name)
	assert.Len(t, src.calls, 1)

	// 新的请求使用新的 resolver，重新查询
	fresh := NewNameResolver(src)
	require.NoError(t, fresh.Load(ctx, []string{"a"}))
	assert.Len(t, src.calls, 2)
}

// singleSource 同时支持批量和单个查询
type singleSource struct {
	countingSource
	singleCalls []string
}

func (s *singleSource) GetFeedName(_ context.Context, mpID string) (string, bool, error) {
	s.singleCalls = append(s.singleCalls, mpID)
	if s.err != nil {
		return "", false, s.err
	}
	name, ok := s.names[mpID]
	return name, ok, nil
}

func TestNameResolverResolveUsesSingleLookup(t *testing.T) {
	src := &singleSource{countingSource: countingSource{names: map[string]string{"a": "Feed A"}}}
	resolver := NewNameResolver(src)
	ctx := context.Background()

	name, err := resolver.Resolve(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Feed A", name)

	name, err = resolver.Resolve(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, UnknownFeedName, name)

	// 命中缓存，不再查询
	_, err = resolver.Resolve(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ghost"}, src.singleCalls)
	assert.Empty(t, src.calls)

	src.err = errors.New("db down")
	_, err = NewNameResolver(src).Resolve(ctx, "a")
	assert.Error(t, err)
}

func TestNameResolverError(t *testing.T) {
	src := &countingSource{err: errors.New("db down")}
	resolver := NewNameResolver(src)

	_, err := resolver.Resolve(context.Background(), "a")
	assert.Error(t, err)
}

func TestFeedRepository(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	f1 := testutils.CreateTestFeed(db, testutils.WithFeedName("计算机学院"))
	f2 := testutils.CreateTestFeed(db)

	names, err := repo.NamesByIDs(ctx, []string{f1.ID, f2.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{f1.ID: "计算机学院", f2.ID: f2.MpName}, names)

	empty, err := repo.NamesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	name, ok, err := repo.GetFeedName(ctx, f1.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "计算机学院", name)

	_, ok, err = repo.GetFeedName(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	resolver := NewNameResolver(repo)
	require.NoError(t, resolver.Load(ctx, []string{f1.ID, "missing"}))
	assert.Equal(t, "计算机学院", resolver.Name(f1.ID))
	assert.Equal(t, UnknownFeedName, resolver.Name("missing"))

	// 详情接口的单个查询走 GetFeedName
	name, err = NewNameResolver(repo).Resolve(ctx, f2.ID)
	require.NoError(t, err)
	assert.Equal(t, f2.MpName, name)
	name, err = NewNameResolver(repo).Resolve(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, UnknownFeedName, name)
}
