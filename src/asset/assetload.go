package asset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jinzhu/copier"
)

// onDiskLoadFormat must be the same as onDiskSaveFormat, except for the type of Inner
type onDiskLoadFormat struct {
	Type   string
	Parent Path `json:",omitempty"`
	Inner  json.RawMessage
}

// onDiskSaveFormat must be the same as onDiskLoadFormat, except for the type of Inner
type onDiskSaveFormat struct {
	Type   string
	Parent Path `json:",omitempty"`
	Inner  interface{}
}

func (a *assetManagerImpl) LoadWithOptions(assetPath Path, options LoadOptions) (Asset, error) {
	return a.load(assetPath, options, map[Path]bool{})
}

func (a *assetManagerImpl) load(assetPath Path, options LoadOptions, loading map[Path]bool) (Asset, error) {
	// If we are able, don't reload an existing asset
	alreadyLoadedAsset, loaded := a.LoadPathToAsset[assetPath]
	if loaded && !options.ForceReload {
		return alreadyLoadedAsset, nil
	}
	if loading[assetPath] {
		return nil, fmt.Errorf("asset %s inherits from itself", assetPath)
	}
	loading[assetPath] = true

	data, err := a.ReadFile(assetPath)
	if err != nil {
		return nil, err
	}

	container := onDiskLoadFormat{}
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("asset %s: %w", assetPath, err)
	}

	descriptor, ok := a.AssetDescriptors[container.Type]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' in %s - is type registered?", ErrUnknownType, container.Type, assetPath)
	}

	target := alreadyLoadedAsset
	if target == nil {
		target, err = descriptor.Create()
		if err != nil {
			return nil, err
		}
	}

	if _, gotType := ObjectTypeName(target); gotType != container.Type {
		return nil, fmt.Errorf("load type mismatch.  Wanted %s, loaded %s", gotType, container.Type)
	}

	if container.Parent != "" {
		parent, err := a.load(container.Parent, LoadOptions{}, loading)
		if err != nil {
			return nil, fmt.Errorf("parent of %s: %w", assetPath, err)
		}
		if _, parentType := ObjectTypeName(parent); parentType != container.Type {
			return nil, fmt.Errorf("parent %s is %s, child %s is %s", container.Parent, parentType, assetPath, container.Type)
		}
		if err := copier.CopyWithOption(target, parent, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("copy parent %s into %s: %w", container.Parent, assetPath, err)
		}
		a.ChildToParent[target] = container.Parent
	}

	// an empty Inner means the whole object is default or inherited
	inner := bytes.TrimSpace(container.Inner)
	if len(inner) > 0 && !bytes.Equal(inner, []byte("null")) {
		if err := json.Unmarshal(inner, target); err != nil {
			return nil, fmt.Errorf("asset %s: %w", assetPath, err)
		}
	}

	if postLoad, ok := target.(PostLoadingAsset); ok {
		postLoad.PostLoad()
	}

	a.AssetToLoadPath[target] = assetPath
	a.LoadPathToAsset[assetPath] = target
	return target, nil
}
