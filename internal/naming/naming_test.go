package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"article", "Article"},
		{"blog-post", "BlogPost"},
		{"blog_post", "BlogPost"},
		{"blog post", "BlogPost"},
		{"blogPost", "BlogPost"},
		{"BlogPost", "BlogPost"},
		{"XMLFeed", "XMLFeed"},
		{"parseURL", "ParseURL"},
		{"BLOG_POST", "BlogPost"},
		{"page2-section", "Page2Section"},
		{"--leading--", "Leading"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PascalCase(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"order_id", []string{"order", "id"}},
		{"page2-section", []string{"page2", "section"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.input))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "TArticle", TypeName(DefaultPrefix, "article"))
	assert.Equal(t, "IBlogPost", TypeName("I", "blog-post"))
	assert.Equal(t, "BlogPost", TypeName("", "blog-post"))
}

func TestRelationTargetName(t *testing.T) {
	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{"api::category.category", "TCategory", true},
		{"api::blog-post.blog-post", "TBlogPost", true},
		{"plugin::users-permissions.user", "TUser", true},
		{"plugin::upload.file", "TMedia", true},
		{"plugin::i18n.locale", "TLocale", true},
		{"category", "TCategory", true},
		{"admin::user", "TAdminUser", true},
		{"strapi::core-store", "TStrapiCoreStore", true},
		{"api::broken.", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, ok := RelationTargetName(DefaultPrefix, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComponentTypeName(t *testing.T) {
	got, ok := ComponentTypeName(DefaultPrefix, "shared.seo")
	assert.True(t, ok)
	assert.Equal(t, "TSeo", got)

	got, ok = ComponentTypeName(DefaultPrefix, "blocks.rich-text")
	assert.True(t, ok)
	assert.Equal(t, "TRichText", got)

	_, ok = ComponentTypeName(DefaultPrefix, "shared.")
	assert.False(t, ok)
}

func TestIsWellKnownTarget(t *testing.T) {
	assert.True(t, IsWellKnownTarget("plugin::upload.file"))
	assert.False(t, IsWellKnownTarget("api::article.article"))
}
