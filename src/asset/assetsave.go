package asset

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

func (a *assetManagerImpl) Save(path Path, toSave Asset) error {
	container, err := a.makeSavedAssetContainer(toSave)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return err
	}

	if !strings.HasSuffix(string(path), ".json") {
		path = path + ".json"
	}
	if err := a.WriteFS.WriteFile(path, data); err != nil {
		return err
	}
	a.AssetToLoadPath[toSave] = path
	a.LoadPathToAsset[path] = toSave
	return nil
}

func (a *assetManagerImpl) makeSavedAssetContainer(toSave Asset) (*onDiskSaveFormat, error) {
	if a.WriteFS == nil {
		return nil, fmt.Errorf("can't save asset: %w", ErrNoWriteFS)
	}
	// toSave must be a pointer, but the top level needs to be
	// saved as a struct
	if reflect.TypeOf(toSave).Kind() != reflect.Pointer {
		panic("Fatal, not a pointer being saved")
	}

	_, fullname := ObjectTypeName(toSave)
	if _, ok := a.AssetDescriptors[fullname]; !ok {
		return nil, fmt.Errorf("%w: %s is not registered with the asset system", ErrUnknownType, fullname)
	}

	return &onDiskSaveFormat{
		Type:   fullname,
		Parent: a.ChildToParent[toSave],
		Inner:  reflect.ValueOf(toSave).Elem().Interface(),
	}, nil
}
