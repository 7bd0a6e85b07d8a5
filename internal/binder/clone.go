package binder

import "context"

// Clone checks out the repository called name from local storage into the
// current directory and returns the source path. A failing git clone is
// returned unchanged so its exit status reaches the caller.
func (b *Binder) Clone(ctx context.Context, name, root string) (string, error) {
	if err := b.resolver.Ensure(ctx, root); err != nil {
		return "", err
	}

	source := BarePath(root, name)
	b.splog.Debug("cloning %s", source)
	return source, b.git.CloneRepo(ctx, source)
}
