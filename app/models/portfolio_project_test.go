package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListValueAndScan(t *testing.T) {
	list := ImageList{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}

	raw, err := list.Value()
	require.NoError(t, err)

	var scanned ImageList
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, list, scanned)
}

func TestImageListScanEdgeCases(t *testing.T) {
	var l ImageList
	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	require.NoError(t, l.Scan(`["x"]`))
	assert.Equal(t, ImageList{"x"}, l)

	assert.Error(t, l.Scan(42))
}

func TestImageListNilValueEncodesEmptyArray(t *testing.T) {
	var l ImageList
	raw, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), raw.([]byte))
}

func TestPortfolioProjectIsPartner(t *testing.T) {
	partner := &PortfolioProject{Title: "PT. Astra Honda Motor", Category: CategoryPartnership}
	assert.True(t, partner.IsPartner())

	project := &PortfolioProject{Title: "Conveyor Gudang", Category: "Konveyor"}
	assert.False(t, project.IsPartner())
}

func TestPortfolioProjectThumbnail(t *testing.T) {
	p := &PortfolioProject{Images: ImageList{"first.png", "second.png"}}
	assert.Equal(t, "first.png", p.Thumbnail())

	empty := &PortfolioProject{}
	assert.Empty(t, empty.Thumbnail())
}

func TestPortfolioProjectValidateImageCap(t *testing.T) {
	images := make(ImageList, MaxProjectImages+1)
	for i := range images {
		images[i] = "x.png"
	}

	p := &PortfolioProject{Title: "Proyek", Category: "Konveyor", Images: images}
	assert.Error(t, p.Validate())

	p.Images = images[:MaxProjectImages]
	assert.NoError(t, p.Validate())
}
