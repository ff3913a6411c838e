package feed

import (
	"context"

	"github.com/samber/lo"
)

// UnknownFeedName 公众号不存在时的占位名称
const UnknownFeedName = "未知公众号"

// NameSource 公众号名称的批量查询来源
type NameSource interface {
	NamesByIDs(ctx context.Context, mpIDs []string) (map[string]string, error)
}

// singleNameSource 支持按单个ID查询的来源，Resolve 优先使用
type singleNameSource interface {
	GetFeedName(ctx context.Context, mpID string) (name string, ok bool, err error)
}

// NameResolver 单次请求内的 mp_id -> mp_name 缓存
// 不要跨请求复用
type NameResolver struct {
	source NameSource
	cache  map[string]string
}

func NewNameResolver(source NameSource) *NameResolver {
	return &NameResolver{
		source: source,
		cache:  make(map[string]string),
	}
}

// Load 一次性查询尚未缓存的 mp_id，不存在的公众号也会缓存为占位名称
func (r *NameResolver) Load(ctx context.Context, mpIDs []string) error {
	missing := lo.Filter(lo.Uniq(mpIDs), func(id string, _ int) bool {
		_, ok := r.cache[id]
		return !ok
	})
	if len(missing) == 0 {
		return nil
	}

	names, err := r.source.NamesByIDs(ctx, missing)
	if err != nil {
		return err
	}

	for _, id := range missing {
		name, ok := names[id]
		if !ok {
			name = UnknownFeedName
		}
		r.cache[id] = name
	}
	return nil
}

// Name 返回已解析的名称，需先调用 Load
func (r *NameResolver) Name(mpID string) string {
	if name, ok := r.cache[mpID]; ok {
		return name
	}
	return UnknownFeedName
}

// Resolve 查询单个 mp_id 的名称
func (r *NameResolver) Resolve(ctx context.Context, mpID string) (string, error) {
	if name, ok := r.cache[mpID]; ok {
		return name, nil
	}

	single, ok := r.source.(singleNameSource)
	if !ok {
		if err := r.Load(ctx, []string{mpID}); err != nil {
			return "", err
		}
		return r.Name(mpID), nil
	}

	name, found, err := single.GetFeedName(ctx, mpID)
	if err != nil {
		return "", err
	}
	if !found {
		name = UnknownFeedName
	}
	r.cache[mpID] = name
	return name, nil
}
