package grid

// Builder accumulates the cells of a new grid. Stages write their output
// through a Builder and publish it with Build; after Build the builder
// rejects further writes so the published grid stays immutable.
//
// Distinct indices may be written from different goroutines concurrently.
type Builder[T comparable] struct {
	g     *Grid[T]
	built bool
}

// NewBuilder starts a grid shaped like s, with every cell set to noData.
func NewBuilder[T comparable](s Shape, noData T, tr Transform) (*Builder[T], error) {
	g, err := New(s.Rows(), s.Cols(), noData, tr)
	if err != nil {
		return nil, err
	}
	return &Builder[T]{g: g}, nil
}

// Rows returns the number of rows of the grid under construction.
func (b *Builder[T]) Rows() int { return b.g.rows }

// Cols returns the number of columns of the grid under construction.
func (b *Builder[T]) Cols() int { return b.g.cols }

// Set writes v at row-major index i. It panics after Build.
func (b *Builder[T]) Set(i int, v T) {
	if b.built {
		panic(ErrBuilderUsed)
	}
	b.g.data[i] = v
}

// Get reads the value currently stored at i.
func (b *Builder[T]) Get(i int) T { return b.g.data[i] }

// Build publishes the grid. The builder must not be used afterwards.
func (b *Builder[T]) Build() *Grid[T] {
	b.built = true
	return b.g
}
