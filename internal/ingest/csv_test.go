package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// writeSources writes one file per source key into a fresh directory and
// returns a config pointing at it. Entities not listed get an empty extract
// with only a header row.
func writeSources(t *testing.T, delimiter string, contents map[string]string) types.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := types.Config{
		DataDir: t.TempDir(),
		Sources: types.SourceConfig{
			Dir:       dir,
			Delimiter: delimiter,
			Files:     types.DefaultSourceFiles(),
		},
	}
	for key, name := range cfg.Sources.Files {
		body, ok := contents[key]
		if !ok {
			body = "header\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return cfg
}

func TestSnapshotParsesCustomers(t *testing.T) {
	cfg := writeSources(t, "", map[string]string{
		types.SourceCrmCustomers: "cst_id,cst_key,firstname,lastname,marital,gender,created\n" +
			"1,AW00011000,Jon,Yang,M,M,2025-10-06\n" +
			",AW00011001,,,,,\n",
	})

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Customers, 2)

	c := snap.Customers[0]
	require.NotNil(t, c.BusinessID)
	assert.Equal(t, int64(1), *c.BusinessID)
	require.NotNil(t, c.Key)
	assert.Equal(t, "AW00011000", *c.Key)
	require.NotNil(t, c.CreatedAt)
	assert.Equal(t, "2025-10-06", c.CreatedAt.Format("2006-01-02"))

	c = snap.Customers[1]
	assert.Nil(t, c.BusinessID)
	assert.Nil(t, c.FirstName)
	assert.Nil(t, c.CreatedAt)
}

func TestSnapshotParsesSales(t *testing.T) {
	cfg := writeSources(t, "", map[string]string{
		types.SourceCrmSales: "ord,prd,cust,order,ship,due,sales,qty,price\n" +
			"SO43697,BK-R93R-62,21768,20101229,20110105,20110110,3578.27,1,3578.27\n" +
			"SO43698,BK-R93R-62,21768,garbage,0,,not-a-number,2,\n",
	})

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Sales, 2)

	s := snap.Sales[0]
	require.NotNil(t, s.OrderDateInt)
	assert.Equal(t, int64(20101229), *s.OrderDateInt)
	require.NotNil(t, s.SalesAmount)
	assert.Equal(t, "3578.27", s.SalesAmount.String())

	t.Run("malformed fields stage as nil", func(t *testing.T) {
		s := snap.Sales[1]
		assert.Nil(t, s.OrderDateInt)
		require.NotNil(t, s.ShipDateInt)
		assert.Equal(t, int64(0), *s.ShipDateInt)
		assert.Nil(t, s.DueDateInt)
		assert.Nil(t, s.SalesAmount)
		require.NotNil(t, s.Quantity)
		assert.Equal(t, int64(2), *s.Quantity)
		assert.Nil(t, s.UnitPrice)
	})
}

func TestSnapshotCustomDelimiter(t *testing.T) {
	cfg := writeSources(t, ";", map[string]string{
		types.SourceErpLocations: "cid;cntry\nAW00011000;DE\n",
	})

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ErpLocations, 1)
	require.NotNil(t, snap.ErpLocations[0].CountryText)
	assert.Equal(t, "DE", *snap.ErpLocations[0].CountryText)
}

func TestSnapshotShortRowsPadded(t *testing.T) {
	cfg := writeSources(t, "", map[string]string{
		types.SourceErpCategories: "id,cat,subcat,maintenance\nCO_RF,Components,Road Frames\n",
	})

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ErpCategories, 1)
	require.NotNil(t, snap.ErpCategories[0].Subcategory)
	assert.Equal(t, "Road Frames", *snap.ErpCategories[0].Subcategory)
	assert.Nil(t, snap.ErpCategories[0].MaintenanceFlag)
}

func TestSnapshotEmptyFile(t *testing.T) {
	cfg := writeSources(t, "", nil)
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Sources.Dir, cfg.Sources.Files[types.SourceCrmProducts]), nil, 0o644))

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
}

func TestSnapshotMissingFile(t *testing.T) {
	cfg := writeSources(t, "", nil)
	require.NoError(t, os.Remove(
		filepath.Join(cfg.Sources.Dir, cfg.Sources.Files[types.SourceErpCustomers])))

	_, err := NewLoader(cfg).Snapshot()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrRawSetMissing)

	var entErr *types.EntityError
	require.ErrorAs(t, err, &entErr)
	assert.Equal(t, types.SourceErpCustomers, entErr.Entity)
}

func TestSnapshotEmptySourceDir(t *testing.T) {
	cfg := writeSources(t, "", nil)
	cfg.Sources.Dir = ""

	_, err := NewLoader(cfg).Snapshot()
	assert.ErrorIs(t, err, types.ErrSourceDirEmpty)
}

func TestSnapshotUnconfiguredSource(t *testing.T) {
	cfg := writeSources(t, "", nil)
	delete(cfg.Sources.Files, types.SourceCrmCustomers)

	_, err := NewLoader(cfg).Snapshot()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrSourceFileUnknown)
}

func TestSnapshotWhitespaceOnlyFieldIsNil(t *testing.T) {
	cfg := writeSources(t, "", map[string]string{
		types.SourceErpCustomers: "cid,bdate,gen\nNAS AW00011000,1971-10-06,   \n",
	})

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ErpCustomers, 1)
	assert.Nil(t, snap.ErpCustomers[0].GenderText)

	require.NotNil(t, snap.ErpCustomers[0].ExternalID)
	assert.Equal(t, "NAS AW00011000", *snap.ErpCustomers[0].ExternalID)
}

func TestSnapshotTrimsLeadingSpace(t *testing.T) {
	cfg := writeSources(t, "", map[string]string{
		types.SourceCrmProducts: "id,key,name,cost,line,start,end\n" +
			"210, BK-R93R-62, Road-150 Red- 62, 2171.29, R, 2011-07-01,\n",
	})

	snap, err := NewLoader(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)

	p := snap.Products[0]
	require.NotNil(t, p.ProductKey)
	assert.Equal(t, "BK-R93R-62", *p.ProductKey)
	require.NotNil(t, p.Cost)
	assert.Equal(t, "2171.29", p.Cost.String())
	assert.Nil(t, p.EndDate)
}
