package databases

import "context"

// aggregate runs pipeline on coll and decodes every resulting document into results
func aggregate(ctx context.Context, coll CollectionHelper, pipeline interface{}, results interface{}) error {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, results)
}
