package reflection

import (
	"time"

	"github.com/devskio/typo3/model"
	"github.com/devskio/typo3/reflection/markers"
)

// Clock is a dependency interface used by constructor and inject fixtures.
type Clock interface {
	Now() time.Time
}

type Comment struct {
	model.Entity
	Author string `validate:"NotEmpty"`
	text   string
}

type Post struct {
	model.Entity
	Title    string    `validate:"NotEmpty;StringLength(minimum=3, maximum=100)"`
	Comments []Comment `cascade:"remove" flow:"lazy"`
	Tags     []string
	views    int            `default:"0"`
	secret   string         `flow:"transient"`
	settings map[string]any `flow:"inject"`
}

func (p *Post) AggregateBoundary() {}

func (p *Post) ClassAnnotations() markers.ClassMeta {
	return markers.ClassMeta{
		Methods: map[string]markers.MethodMeta{
			"NewPost": {
				Params: []markers.ParamMeta{{Name: "title"}, {Name: "clock"}},
			},
		},
	}
}

func NewPost(title string, clock Clock) *Post {
	return &Post{Title: title}
}

type PostRepository struct {
	model.Repository
}

// Draft is aggregate-marked but has no repository.
type Draft struct {
	model.Entity
	Body string
}

func (d *Draft) AggregateBoundary() {}

type Money struct {
	model.ValueObject
	Amount   int64
	Currency string `default:"EUR"`
}

type PostService struct {
	model.Singleton
	clock Clock `flow:"inject"`
}

func (s *PostService) InjectClock(clock Clock) { s.clock = clock }

func (s *PostService) InjectSettings(settings map[string]any) {}

func (s *PostService) InjectName(name string) {}

func (s *PostService) Publish(post *Post, notify ...string) {}

type PostController struct {
	model.Controller
}

func (c *PostController) ShowAction(id string, comment *Comment) {}

func (c *PostController) CreateAction(title string, body any) {}

func (c *PostController) Helper() {}

func (c *PostController) ClassAnnotations() markers.ClassMeta {
	return markers.ClassMeta{
		Methods: map[string]markers.MethodMeta{
			"ShowAction": {
				Params: []markers.ParamMeta{{Name: "id"}, {Name: "comment"}},
				Markers: []markers.Marker{
					{Name: "Validate", Options: map[string]string{"argumentName": "id", "type": "Uuid"}},
					{Name: "IgnoreValidation", Options: map[string]string{"argumentName": "comment"}},
				},
			},
			"CreateAction": {
				Doc: "Creates a post.\n@param string $title\n@param string $body",
				Markers: []markers.Marker{
					{Name: "Validate", Options: map[string]string{
						"argumentName": "title", "type": "StringLength", "minimum": "3",
					}},
				},
			},
		},
	}
}

// BrokenController declares a validator for an argument no action has.
type BrokenController struct {
	model.Controller
}

func (c *BrokenController) EditAction(id string) {}

func (c *BrokenController) ClassAnnotations() markers.ClassMeta {
	return markers.ClassMeta{
		Methods: map[string]markers.MethodMeta{
			"EditAction": {
				Params: []markers.ParamMeta{{Name: "id"}},
				Markers: []markers.Marker{
					{Name: "Validate", Options: map[string]string{"argumentName": "missing", "type": "NotEmpty"}},
				},
			},
		},
	}
}

// UntypedController binds a validator to a parameter no source can type.
type UntypedController struct {
	model.Controller
}

func (c *UntypedController) HandleAction(payload any) {}

func (c *UntypedController) ClassAnnotations() markers.ClassMeta {
	return markers.ClassMeta{
		Methods: map[string]markers.MethodMeta{
			"HandleAction": {
				Params: []markers.ParamMeta{{Name: "payload"}},
				Markers: []markers.Marker{
					{Name: "Validate", Options: map[string]string{"argumentName": "payload", "type": "NotEmpty"}},
				},
			},
		},
	}
}

type UnknownValidatorOwner struct {
	model.Entity
	Name string `validate:"Bogus"`
}

type BadFlowFlag struct {
	model.Entity
	Name string `flow:"sparkly"`
}

type ConfusedModel struct {
	model.Entity
	model.ValueObject
}

func newTestRegistry(opts ...Option) *Registry {
	return NewRegistry(opts...)
}
