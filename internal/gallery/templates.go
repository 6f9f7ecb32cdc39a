package gallery

import (
	"embed"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	markupTemplates *template.Template
	markupOnce      sync.Once
	markupErr       error
)

// DocumentTitle is the heading and <title> of the gallery page.
const DocumentTitle = "Employee Directory"

type shellData struct {
	Title string
}

type cardData struct {
	Index     int
	Thumbnail string
	Name      string
	Email     string
	Location  string
}

type searchData struct {
	Query string
}

type modalData struct {
	Index    int
	Total    int
	Picture  string
	Name     string
	Email    string
	City     string
	Phone    string
	Address  string
	Birthday string
	HasPrev  bool
	HasNext  bool
}

func executeMarkup(name string, data any) (string, error) {
	markupOnce.Do(func() {
		markupTemplates, markupErr = template.New("gallery").ParseFS(templateFS, "templates/*.tmpl")
	})
	if markupErr != nil {
		return "", markupErr
	}

	var b strings.Builder
	if err := markupTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func newCardData(index int, p Profile) cardData {
	return cardData{
		Index:     index,
		Thumbnail: p.Picture.Thumbnail,
		Name:      FullName(p),
		Email:     p.Email,
		Location:  CityState(p),
	}
}

func newModalData(list []Profile, index int) modalData {
	p := list[index]
	return modalData{
		Index:    index,
		Total:    len(list),
		Picture:  p.Picture.Large,
		Name:     FullName(p),
		Email:    p.Email,
		City:     p.Location.City,
		Phone:    FormatPhone(p.Cell),
		Address:  FormatAddress(p),
		Birthday: Birthday(p),
		HasPrev:  index > 0,
		HasNext:  index < len(list)-1,
	}
}
