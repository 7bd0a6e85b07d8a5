package binder

import "path/filepath"

// BareSuffix is the suffix every repository in local storage carries.
const BareSuffix = ".git"

// BareName appends BareSuffix to name unless it is already there.
func BareName(name string) string {
	if filepath.Ext(name) == BareSuffix {
		return name
	}
	return name + BareSuffix
}

// BarePath returns the location of the bare repository called name under root.
func BarePath(root, name string) string {
	return filepath.Join(root, BareName(name))
}

// TargetFor returns the bare repository a work tree binds to.
func TargetFor(root, workTree string) string {
	return BarePath(root, filepath.Base(workTree))
}
