/*
* Assets on disk share one format - onDiskLoadFormat.  The container holds the
* registered type name, an optional Parent path and an Inner that holds the
* user defined data.
*
* The Rules of Assets
* Every Asset is a singleton per load path.  Loading the same path twice returns
* the same object unless LoadOptions.ForceReload is set.  Runtime data (positions,
* frame counters) should live outside assets.
*
* A child asset names its Parent.  The parent is loaded first, deep copied into
* the child and then the child's own Inner is applied on top, so a child only
* needs to store the fields it overrides.
 */

package asset

import (
	"errors"
	"fmt"
	"io/fs"
	systemLog "log"
	"os"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

var log = systemLog.New(os.Stderr, "Asset ", systemLog.Ltime)

var (
	ErrNotFound    = errors.New("asset not found")
	ErrUnknownType = errors.New("unknown asset type")
	ErrNoWriteFS   = errors.New("no writable file system registered")
)

// Path is a distinct type from string so that asset references are
// obvious in structs.  The `filter` tag documents which extensions a
// Path field expects, for example
//
//	struct {
//	  P Path `filter:"ttf"`
//	}
type Path string

type AssetDescriptor struct {
	Name     string
	FullName string
	Create   FactoryFunc
	Type     reflect.Type
}

// Asset can be any type.
type Asset interface{}

type PostLoadingAsset interface {
	PostLoad()
}

// Any type that implements DefaultInitializer will
// have DefaultInitialize called when assets are created.
// Types do not need to be assets for this to work.
type DefaultInitializer interface {
	DefaultInitialize()
}

type FactoryFunc func() (Asset, error)

type LoadOptions struct {
	// ForceReload will reload the asset from disk.  If the asset already
	// exists in memory that same object will be reused.
	ForceReload bool
}

func RegisterFileSystem(filesystem fs.FS, priority int) error {
	if filesystem == nil {
		return fmt.Errorf("RegisterFileSystem: nil file system")
	}
	return assetManager.AddFS(&fsWrapper{FileSystem: filesystem, Priority: priority})
}

func RegisterWritableFileSystem(filesystem WriteableFileSystem) error {
	assetManager.WriteFS = filesystem
	return nil
}

func RegisterAssetFactory(zeroAsset any, factoryFunction FactoryFunc) {
	assetManager.RegisterAssetFactory(zeroAsset, factoryFunction)
}

func RegisterAsset(zeroAsset any) {
	zeroType := reflect.TypeOf(zeroAsset)
	assetManager.RegisterAssetFactory(zeroAsset, func() (Asset, error) {
		return reflect.New(zeroType).Interface().(Asset), nil
	})
}

func ReadFile(assetPath Path) ([]byte, error) {
	return assetManager.ReadFile(assetPath)
}

// Exists reports whether any registered file system can read assetPath.
func Exists(assetPath Path) bool {
	_, err := assetManager.ReadFile(assetPath)
	return err == nil
}

func Load(assetPath Path) (Asset, error) {
	return assetManager.LoadWithOptions(assetPath, LoadOptions{})
}

func LoadWithOptions(assetPath Path, options LoadOptions) (Asset, error) {
	return assetManager.LoadWithOptions(assetPath, options)
}

// LoadAs loads assetPath and asserts that it holds a T.
func LoadAs[T any](assetPath Path) (T, error) {
	var zero T
	a, err := Load(assetPath)
	if err != nil {
		return zero, err
	}
	typed, ok := a.(T)
	if !ok {
		return zero, fmt.Errorf("asset %s is %T, not %T", assetPath, a, zero)
	}
	return typed, nil
}

// Create builds a fresh, default initialized instance of a registered type.
func Create(fullName string) (Asset, error) {
	desc, ok := assetManager.AssetDescriptors[fullName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, fullName)
	}
	return desc.Create()
}

func Save(path Path, toSave Asset) error {
	return assetManager.Save(path, toSave)
}

func LoadPathForAsset(a Asset) (Path, error) {
	path, ok := assetManager.AssetToLoadPath[a]
	if !ok {
		return path, fmt.Errorf("asset not loaded")
	}
	return path, nil
}

func Reset() {
	assetManager = newAssetManagerImpl()
}

func GetAssetDescriptors() []*AssetDescriptor {
	return assetManager.AssetDescriptorList
}

func ObjectTypeName(obj any) (name string, fullname string) {
	return TypeName(reflect.TypeOf(obj))
}

func TypeName(t reflect.Type) (name string, fullname string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name(), t.PkgPath() + "." + t.Name()
}

type assetManagerImpl struct {
	FileSystems         []*fsWrapper
	AssetDescriptors    map[string]*AssetDescriptor
	AssetDescriptorList []*AssetDescriptor
	WriteFS             WriteableFileSystem

	// AssetToLoadPath tracks in-memory assets to their load path.
	AssetToLoadPath map[Asset]Path

	// LoadPathToAsset maps a Path to an already loaded asset.
	LoadPathToAsset map[Path]Asset

	// ChildToParent maps a child asset to its parent.
	ChildToParent map[Asset]Path
}

type fsWrapper struct {
	FileSystem fs.FS
	Priority   int
}

var assetManager = newAssetManagerImpl()

func newAssetManagerImpl() *assetManagerImpl {
	return &assetManagerImpl{
		FileSystems:      []*fsWrapper{},
		AssetDescriptors: map[string]*AssetDescriptor{},
		AssetToLoadPath:  map[Asset]Path{},
		LoadPathToAsset:  map[Path]Asset{},
		ChildToParent:    map[Asset]Path{},
	}
}

func (a *assetManagerImpl) AddFS(wrapper *fsWrapper) error {
	a.FileSystems = append(a.FileSystems, wrapper)
	slices.SortStableFunc(a.FileSystems, func(a, b *fsWrapper) int {
		return a.Priority - b.Priority
	})
	return nil
}

// ReadFile returns the data for path from the first (lowest priority value)
// file system that has it.
func (a *assetManagerImpl) ReadFile(path Path) ([]byte, error) {
	for _, fsys := range a.FileSystems {
		data, err := fs.ReadFile(fsys.FileSystem, string(path))
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: unable to find path (%s) in any registered FS", ErrNotFound, path)
}

func (a *assetManagerImpl) RegisterAssetFactory(zeroAsset any, factoryFunction FactoryFunc) {
	zeroType := reflect.TypeOf(zeroAsset)
	if zeroType.Kind() != reflect.Struct {
		log.Panicf("RegisterAssetFactory must be called with a concrete type that is a struct.  This is a programming error - %v", zeroAsset)
	}

	// wrap the client provided factoryFunc with one that also initializes structs
	createFunc := func() (Asset, error) {
		a, err := factoryFunction()
		if a != nil {
			callAllDefaultInitializers(a)
		}
		return a, err
	}

	name, typeName := ObjectTypeName(zeroAsset)
	descriptor := &AssetDescriptor{
		Name:     name,
		FullName: typeName,
		Create:   createFunc,
		Type:     zeroType,
	}
	if _, exists := a.AssetDescriptors[typeName]; exists {
		a.AssetDescriptorList = slices.DeleteFunc(a.AssetDescriptorList, func(d *AssetDescriptor) bool {
			return d.FullName == typeName
		})
	}
	a.AssetDescriptors[typeName] = descriptor
	a.AssetDescriptorList = append(a.AssetDescriptorList, descriptor)
	slices.SortFunc(a.AssetDescriptorList, func(a, b *AssetDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
}
