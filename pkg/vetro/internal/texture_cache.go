package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 16

// TextureCache is a small LRU cache for rendered textures (rasterized icons,
// wrapped text). Screens own one cache each and destroy it on exit.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// GetOrCreate returns the cached texture for key, invoking create on a miss.
// A nil result from create is not cached.
func (c *TextureCache) GetOrCreate(key string, create func() *sdl.Texture) *sdl.Texture {
	if texture := c.Get(key); texture != nil {
		return texture
	}
	texture := create()
	if texture != nil {
		c.Set(key, texture)
	}
	return texture
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
