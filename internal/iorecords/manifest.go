package iorecords

import (
	"os"
	"sort"

	"github.com/acorg/acorgdb/pkg/config"
	"github.com/acorg/acorgdb/pkg/db"
	"gopkg.in/yaml.v3"
)

// manifest mirrors datasets.yaml at the root of a data directory.
type manifest struct {
	Datasets []db.Dataset `yaml:"datasets"`
}

// listDatasets returns the datasets of a data directory. When
// datasets.yaml exists it is authoritative; otherwise every
// subdirectory counts as a dataset.
func listDatasets(dataDir string) ([]db.Dataset, error) {
	path := config.DatasetsFilePath(dataDir)
	data, err := os.ReadFile(path)
	if err == nil {
		var m manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, DatasetConfigError(path, err)
		}
		return m.Datasets, nil
	}
	if !os.IsNotExist(err) {
		return nil, DatasetConfigError(path, err)
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, DatasetConfigError(dataDir, err)
	}
	var res []db.Dataset
	for _, e := range entries {
		if e.IsDir() {
			res = append(res, db.Dataset{Name: e.Name()})
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}
