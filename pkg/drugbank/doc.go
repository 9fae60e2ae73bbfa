// Package drugbank reads DrugBank XML exports.
//
// A DrugBank export is a single <drugbank> document in the
// http://www.drugbank.ca namespace whose direct children are <drug>
// records. Drugs referenced from inside a record (for example the drug
// list of a pathway) are not records of their own and are never returned.
//
// # Reading
//
// Records are streamed one at a time so that full exports, which run to
// gigabytes, do not have to be held in memory:
//
//	r := drugbank.NewReader(f)
//	for {
//	    drug, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// Parse and ParseFile collect every record of a document.
//
// # Errors
//
//   - ErrEmptyDocument: the input contains nothing but whitespace
//   - *ParseError: the input is not well-formed XML
package drugbank
